package configuration

import (
	"os"

	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

// LoadEnvFile reads a dotenv file and exports every variable that is not
// already present in the process environment.
func LoadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open env file")
	}
	defer file.Close()

	env, err := gotenv.StrictParse(file)
	if err != nil {
		return errors.Wrapf(err, "failed to parse env file %s", path)
	}

	SetParsedVariablesToEnv(env)
	return nil
}

func SetParsedVariablesToEnv(env gotenv.Env) {
	for k, v := range env {
		if _, exists := os.LookupEnv(k); !exists {
			_ = os.Setenv(k, v)
		}
	}
}
