package launcher_test

type MockSpawner struct {
	Fail  error
	Calls [][]string
}

func (mockSpawner *MockSpawner) Start(name string, args ...string) error {
	mockSpawner.Calls = append(mockSpawner.Calls, append([]string{name}, args...))
	return mockSpawner.Fail
}

type MockNotifier struct {
	Titles   []string
	Messages []string
}

func (mockNotifier *MockNotifier) ShowError(title, message string) {
	mockNotifier.Titles = append(mockNotifier.Titles, title)
	mockNotifier.Messages = append(mockNotifier.Messages, message)
}

type MockConsole struct {
	Lines    []string
	KeyWaits int
}

func (mockConsole *MockConsole) Println(line string) {
	mockConsole.Lines = append(mockConsole.Lines, line)
}

func (mockConsole *MockConsole) WaitKey() {
	mockConsole.KeyWaits++
}
