// Package cmd wires the logshift cobra commands. This file provides
// helpers shared by the command integration tests: output capture and
// global flag state reset between runs.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"

	logger "github.com/skalene/logshift/internal/logging"
)

// ResetGlobalState resets all command flag variables to their defaults.
// Cobra commands are package globals, so tests must call this between runs.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	rewriteDryRun = false
	rewriteDiff = false
	rewriteExt = ""
	scanExt = ""
	versionBanner = false
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Printf("failed to copy stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Printf("failed to copy stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	output := <-outputChan
	output += <-outputChan

	return output, err
}
