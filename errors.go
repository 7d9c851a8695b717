package yuvclip

import "errors"

var errNilFrame = errors.New("yuvclip: nil frame")
