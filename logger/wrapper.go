package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
)

// WrapProcess runs the executable, forwards its JSON log lines to stdout and
// turns a panic dump on its stderr into one fatal record. It returns the
// child exit code.
func WrapProcess(executable string, arg ...string) int {
	wrapLogger := NewLogger("Supervisor").With().Str("executable", executable).Logger()
	defer handlePanic(wrapLogger)

	r, w, err := os.Pipe()
	if err != nil {
		wrapLogger.Error().Err(err).Msg("Could not create pipe for logs")
		return 1
	}

	cmd := exec.Command(executable, arg...)
	cmd.Stderr = w
	cmd.Stdout = os.Stdout

	if err = cmd.Start(); err != nil {
		wrapLogger.Error().Err(err).Msg("Could not launch supervised process")
		return 1
	}
	// the child owns the write end now
	_ = w.Close()

	exitCodeCh := make(chan int, 1)
	logsCh := make(chan []byte)
	doneCh := make(chan struct{})

	go waitForCommandToExit(cmd, wrapLogger, exitCodeCh)
	go collectLogs(r, wrapLogger, logsCh, doneCh)

	var panicLogs bytes.Buffer
	foundPanic := false
	for {
		select {
		case line := <-logsCh:
			foundPanic = handleLogLine(line, foundPanic, &panicLogs, wrapLogger)
		case <-doneCh:
			exitCode := <-exitCodeCh
			handleExit(exitCode, panicLogs.String(), wrapLogger)
			return exitCode
		}
	}
}

func waitForCommandToExit(cmd *exec.Cmd, wrapLogger zerolog.Logger, exitCodeCh chan<- int) {
	defer handlePanic(wrapLogger)
	err := cmd.Wait()
	if err == nil {
		exitCodeCh <- 0
		return
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		exitCodeCh <- 1
		return
	}
	exitCodeCh <- exitErr.ExitCode()
}

func collectLogs(r io.ReadCloser, wrapLogger zerolog.Logger, logsCh chan<- []byte, doneCh chan<- struct{}) {
	defer handlePanic(wrapLogger)
	defer close(doneCh)
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		logsCh <- line
	}
	if err := scanner.Err(); err != nil {
		wrapLogger.Error().Err(err).Msg("Error scanning supervised process stderr")
	}
}

func handleExit(exitCode int, panicLogs string, wrapLogger zerolog.Logger) {
	if exitCode == 0 {
		wrapLogger.Info().Msg("Exited with code 0")
		return
	}
	event := wrapLogger.Error().Int("exit_code", exitCode)
	if len(panicLogs) > 0 {
		event = event.Err(errors.New(panicLogs))
	}
	event.Msgf("Supervised process exited with code: %d", exitCode)
}

func handleLogLine(line []byte, foundPanic bool, panicLogs *bytes.Buffer, wrapLogger zerolog.Logger) bool {
	text := string(line)
	if !foundPanic && strings.HasPrefix(text, "panic") {
		foundPanic = true
	}
	switch {
	case len(line) == 0:
		return foundPanic
	case foundPanic:
		panicLogs.WriteString(fmt.Sprintf("%s\n", text))
	case isJSON(line):
		fmt.Fprintln(os.Stdout, text)
	default:
		wrapLogger.Error().Msgf("Got log line that is not JSON formatted: '%s'", text)
	}
	return foundPanic
}

func handlePanic(wrapLogger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	wrapLogger.Fatal().
		Caller().
		Str("error", fmt.Sprint(r)).
		Str("stack_trace", string(debug.Stack())).
		Msg("Supervisor panicked")
}

func isJSON(b []byte) bool {
	var js json.RawMessage
	err := json.Unmarshal(b, &js)
	return err == nil && js != nil
}
