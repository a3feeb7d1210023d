package console

// Level of a transient notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Notice is a short message shown to the user and then forgotten.
type Notice struct {
	Level Level
	Text  string
	Err   error
}

type Notifier interface {
	Notify(n Notice)
}

type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}

const (
	noticeSaved   = "Changes saved!"
	noticeDeleted = "Changes deleted"
)
