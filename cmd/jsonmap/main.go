/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/krotik/common/fileutil"
	jsonenc "github.com/shapestone/shape-json/pkg/json"
	yamlenc "github.com/shapestone/shape-yaml/pkg/yaml"

	"github.com/jsonmap-lang/jsonmap"
	"github.com/jsonmap-lang/jsonmap/internal/jmconfig"
	"github.com/jsonmap-lang/jsonmap/internal/jmlog"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <program-file> [<data-file>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "jsonmap %v - declarative JSON reshaping\n\n", jmconfig.ProductVersion)
		fmt.Fprintln(os.Stderr, "Reads JSON (or YAML, by file extension) from <data-file> or stdin,")
		fmt.Fprintln(os.Stderr, "applies the program in <program-file>, and prints the result to stdout.")
	}

	logLevel := flag.String("log-level", jmconfig.Str(jmconfig.LogLevel), "log level: debug, info, or error")
	indent := flag.Int("indent", jmconfig.Int(jmconfig.OutputIndent), "output indent width; 0 for compact output")
	flag.Parse()

	logger, err := jmlog.New(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if err := run(flag.Args(), *indent, logger); err != nil {
		logger.LogError(err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, indent int, logger *jmlog.LevelLogger) error {
	if len(args) < 1 {
		flag.Usage()
		return fmt.Errorf("missing required <program-file> argument")
	}

	programPath := args[0]
	logger.LogDebug("loading program from ", programPath)

	if ok, _ := fileutil.PathExists(programPath); !ok {
		return fmt.Errorf("program file %q does not exist", programPath)
	}

	source, err := ioutil.ReadFile(programPath)
	if err != nil {
		return fmt.Errorf("could not read program file %q: %w", programPath, err)
	}

	prog, err := jsonmap.Compile(string(source))
	if err != nil {
		return err
	}
	logger.LogInfo("compiled program with ", len(prog.Statements()), " top-level statement(s)")

	input, err := readInput(args)
	if err != nil {
		return err
	}

	output, err := prog.Apply(input)
	if err != nil {
		return err
	}

	return writeOutput(output, indent)
}

/*
readInput reads the data file named in args[1], or stdin when no data file
is given, and decodes it as JSON or YAML based on the data file's extension
(stdin is always treated as JSON).
*/
func readInput(args []string) (interface{}, error) {
	if len(args) < 2 {
		raw, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("could not read input from stdin: %w", err)
		}
		return decode(raw, ".json")
	}

	dataPath := args[1]
	if ok, _ := fileutil.PathExists(dataPath); !ok {
		return nil, fmt.Errorf("data file %q does not exist", dataPath)
	}

	raw, err := ioutil.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("could not read data file %q: %w", dataPath, err)
	}
	return decode(raw, filepath.Ext(dataPath))
}

func decode(raw []byte, ext string) (interface{}, error) {
	var value interface{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yamlenc.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("could not parse YAML input: %w", err)
		}
	default:
		if err := jsonenc.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("could not parse JSON input: %w", err)
		}
	}

	return value, nil
}

func writeOutput(value interface{}, indent int) error {
	var raw []byte
	var err error

	if indent > 0 {
		raw, err = jsonenc.MarshalIndent(value, "", strings.Repeat(" ", indent))
	} else {
		raw, err = jsonenc.Marshal(value)
	}
	if err != nil {
		return fmt.Errorf("could not render output: %w", err)
	}

	fmt.Println(string(raw))
	return nil
}
