package main

import "time"

type Mode int

const (
	ModeIdle Mode = iota
	ModeAwaitingInput
)

// Kind is a transform that takes numeric parameters from the input box.
type Kind int

const (
	KindNone Kind = iota
	KindTranslate
	KindScale
	KindRotate
	KindShear
)

type Command int

const (
	CmdNone Command = iota
	CmdTranslate
	CmdScale
	CmdRotate
	CmdReflectX
	CmdReflectY
	CmdShear
	CmdReset
	CmdBack
	CmdCancel
)

const (
	worldWidth  = 800
	worldHeight = 600
	gridStep    = 50

	defaultFrames     = 10
	defaultFrameDelay = 50 * time.Millisecond

	buttonWidth   = 11
	buttonHeight  = 3
	buttonSpacing = 1
	cancelWidth   = 10

	headerRows  = 6 // info, prompt, input box (3), error
	toolbarRows = buttonHeight
	statusRows  = 1

	infoText = "Original (Blue) | Transformed (Red)"
)
