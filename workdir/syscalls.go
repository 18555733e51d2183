package workdir

import "os"

type OS struct{}

func (*OS) Getwd() (string, error) {
	return os.Getwd()
}
