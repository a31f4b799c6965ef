package process

import (
	"os/exec"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sirupsen/logrus"
)

// Spawner starts detached child processes without a console window.
type Spawner struct{}

func NewSpawner() *Spawner {
	return &Spawner{}
}

// Start resolves name through the executable search path and starts it with
// args. The child is released as soon as it is running: its lifetime and
// exit status are not tracked.
func (s *Spawner) Start(name string, args ...string) error {
	command := exec.Command(name, args...)
	hideConsole(command)

	if err := command.Start(); err != nil {
		return goerr.Wrap(err, "failed to start process",
			goerr.V("name", name), goerr.V("args", args))
	}
	logrus.Debugf("Started %s with pid %d", name, command.Process.Pid)

	if err := command.Process.Release(); err != nil {
		logrus.Warnf("Cannot release process %s: %v", name, err)
	}
	return nil
}
