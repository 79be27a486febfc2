package lib

import (
	"fmt"
	"os"
	"path"
	"strings"
)

type Script struct {
	Name   string
	Source string
	AST    Program
	Result RuntimeValue
}

// ReadSource returns the contents of a source file.
func ReadSource(filePath string) (string, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filePath, err)
	}
	return string(bytes), nil
}

// ReadScript loads a source file, parses it and evaluates it.
func ReadScript(filePath string) (Script, error) {
	source, err := ReadSource(filePath)
	if err != nil {
		return Script{}, err
	}
	script := Script{
		Name:   scriptNameFromPath(filePath),
		Source: source,
	}

	// Parse the file to get AST
	prog, err := Parse(script.Source)
	if err != nil {
		return Script{}, err
	}
	script.AST = prog

	result, err := Evaluate(prog)
	if err != nil {
		return Script{}, err
	}
	script.Result = result

	return script, nil
}

func scriptNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}
