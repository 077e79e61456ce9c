package tui

type unlockDoneMsg struct {
	err error
}

type accountSavedMsg struct {
	name string
	err  error
}

type accountDeletedMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
