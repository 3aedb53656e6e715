package cli

import "errors"

// GlobalFlags are the few options taskline itself understands. Everything
// else on the command line belongs to the classifier.
type GlobalFlags struct {
	ConfigPath  string
	DateFormat  string
	DataDir     string
	JSON        bool
	Verbose     bool
	Plain       bool
	Interactive bool
}

// ExtractGlobalFlags strips known global flags from anywhere before "--".
// The "--" itself and all tokens after it are passed through untouched.
func ExtractGlobalFlags(args []string) (GlobalFlags, []string, error) {
	gf := GlobalFlags{}
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch a {
		case "--":
			return gf, append(out, args[i:]...), nil
		case "--config":
			if i+1 >= len(args) {
				return gf, nil, errors.New("--config requires a value")
			}
			gf.ConfigPath = args[i+1]
			i++
		case "--dateformat":
			if i+1 >= len(args) {
				return gf, nil, errors.New("--dateformat requires a value")
			}
			gf.DateFormat = args[i+1]
			i++
		case "--data":
			if i+1 >= len(args) {
				return gf, nil, errors.New("--data requires a value")
			}
			gf.DataDir = args[i+1]
			i++
		case "--json":
			gf.JSON = true
		case "--verbose":
			gf.Verbose = true
		case "--plain":
			gf.Plain = true
		case "--interactive":
			gf.Interactive = true
		default:
			out = append(out, a)
		}
	}

	return gf, out, nil
}
