package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"vnengine.dev/launcher/internal/configloader"
	"vnengine.dev/launcher/internal/console"
	"vnengine.dev/launcher/internal/dialog"
	"vnengine.dev/launcher/internal/launcher"
	"vnengine.dev/launcher/internal/process"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "vnlauncher"

func main() {
	// Parsing the command line argument to change settings file location
	configurationFilePath := flag.String("config", "", "Configuration file path")
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.ErrorLevel)
	configuration, err := configloader.LoadConfiguration(APPLICATION_NAME, *configurationFilePath)
	if err != nil {
		logrus.Errorf("%+v", err)
	} else if level, err := configuration.Level(); err != nil {
		logrus.Errorf("%+v", err)
	} else {
		logrus.SetLevel(level)
	}

	instance := launcher.NewLauncher(
		os.DirFS(".").(fs.StatFS),
		process.NewSpawner(),
		dialog.NewDialog(),
		console.NewConsole())
	outcome := instance.Run()
	logrus.Debugf("Launcher finished: %s", outcome)
}
