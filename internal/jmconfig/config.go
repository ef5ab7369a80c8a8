/*
 * jsonmap
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package jmconfig holds the small set of process-wide knobs the jsonmap CLI
and tooling read at startup. The core library (compile/apply) takes no
configuration of its own — everything here is presentation/CLI concern.
*/
package jmconfig

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

/*
ProductVersion is the current version of jsonmap.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	// OutputIndent is the number of spaces used to indent CLI output. 0
	// means compact, single-line output.
	OutputIndent = "OutputIndent"

	// LogLevel controls the verbosity of diagnostic logging ("debug",
	// "info" or "error").
	LogLevel = "LogLevel"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	OutputIndent: 2,
	LogLevel:     "info",
}

/*
Config is the actual configuration in effect.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{}, len(DefaultConfig))
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

/*
Str reads a config value as a string.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)
	errorutil.AssertTrue(err == nil, fmt.Sprintf("could not parse config key %v: %v", key, err))
	return int(ret)
}
