package launcher

import (
	"errors"
	"io/fs"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sirupsen/logrus"
)

const (
	ARCHIVE_NAME       = "Game.jar"
	RUNTIME_EXECUTABLE = "javaw"

	RUNTIME_ERROR_TITLE   = "Error"
	RUNTIME_ERROR_MESSAGE = "Java is not found. Please install Java."
	ARCHIVE_ERROR_MESSAGE = ARCHIVE_NAME + " not found!"
)

// Every failure to start the runtime is reported under this single error
var ErrRuntimeLaunchFailed = errors.New("runtime launch failed")

type Outcome int

const (
	Launched Outcome = iota
	ArchiveNotFound
	RuntimeLaunchFailed
)

func (o Outcome) String() string {
	switch o {
	case Launched:
		return "launched"
	case ArchiveNotFound:
		return "archive not found"
	case RuntimeLaunchFailed:
		return "runtime launch failed"
	}
	return "unknown"
}

type Spawner interface {
	Start(name string, args ...string) error
}

type Notifier interface {
	ShowError(title, message string)
}

type Console interface {
	Println(line string)
	WaitKey()
}

type Launcher struct {
	workingDirectory fs.StatFS
	spawner          Spawner
	notifier         Notifier
	console          Console
}

func NewLauncher(workingDirectory fs.StatFS, spawner Spawner, notifier Notifier, console Console) *Launcher {
	return &Launcher{
		workingDirectory: workingDirectory,
		spawner:          spawner,
		notifier:         notifier,
		console:          console,
	}
}

// Run hands the archive over to the runtime, or tells the user why it
// could not. It never waits for the started runtime.
func (l *Launcher) Run() Outcome {
	if !l.archiveExists() {
		logrus.Debugf("%s is missing from the working directory", ARCHIVE_NAME)
		l.console.Println(ARCHIVE_ERROR_MESSAGE)
		l.console.WaitKey()
		return ArchiveNotFound
	}

	if err := l.StartRuntime(); err != nil {
		logrus.Debugf("%+v", err)
		l.notifier.ShowError(RUNTIME_ERROR_TITLE, RUNTIME_ERROR_MESSAGE)
		return RuntimeLaunchFailed
	}

	logrus.Infof("%s launched with %s", ARCHIVE_NAME, RUNTIME_EXECUTABLE)
	return Launched
}

// Only the name is checked, so an empty file is accepted. A directory
// carrying the archive name is not.
func (l *Launcher) archiveExists() bool {
	info, err := l.workingDirectory.Stat(ARCHIVE_NAME)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logrus.Warnf("Cannot stat %s: %v", ARCHIVE_NAME, err)
		}
		return false
	}
	return !info.IsDir()
}

// StartRuntime spawns the runtime on the archive. Whatever the cause, a
// failure matches ErrRuntimeLaunchFailed.
func (l *Launcher) StartRuntime() error {
	if err := l.spawner.Start(RUNTIME_EXECUTABLE, "-jar", ARCHIVE_NAME); err != nil {
		return goerr.Wrap(errors.Join(ErrRuntimeLaunchFailed, err), "cannot start runtime",
			goerr.V("runtime", RUNTIME_EXECUTABLE), goerr.V("archive", ARCHIVE_NAME))
	}
	return nil
}
