package app

import "errors"

var (
	ErrLockedLesson = errors.New("lesson is locked")

	ErrAlreadyCompleted = errors.New("lesson has already been completed")

	ErrUnknownLesson = errors.New("unknown lesson")

	ErrNoActiveLesson = errors.New("no active lesson")
)
