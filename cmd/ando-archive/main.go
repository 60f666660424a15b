package main

import (
	"fmt"
	"os"

	"github.com/go-errors/errors"

	"ando-archive/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ando Archive failed to start:", errors.Wrap(err, 0).ErrorStack())
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Ando Archive exited with error:", errors.Wrap(err, 0).ErrorStack())
		os.Exit(1)
	}
}
