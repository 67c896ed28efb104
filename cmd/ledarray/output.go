package main

// This file selects where frames end up, a terminal, an OPC server or nowhere

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/TeamNorCal/ledarray"
	"github.com/TeamNorCal/ledarray/model"
)

func openOutput(show *model.Show, stopC chan<- os.Signal) (out ledarray.Output, closer func(), err errors.Error) {
	switch *driverName {
	case "discard":
		return ledarray.DiscardOutput{}, func() {}, nil

	case "opc":
		layout := ledarray.SingleChannel(uint8(*opcChannel), show.Strip.LEDs)
		opcOut, err := ledarray.NewOPCOutput(*opcServer, layout)
		if err != nil {
			return nil, nil, err
		}
		return opcOut, func() {}, nil

	case "term":
		screen, errGo := tcell.NewScreen()
		if errGo != nil {
			return nil, nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
		}
		if errGo = screen.Init(); errGo != nil {
			return nil, nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
		}
		screen.Clear()
		go watchKeys(screen, stopC)
		return ledarray.NewTermOutput(screen, show.Strip.Width), screen.Fini, nil
	}

	return nil, nil, errors.New(fmt.Sprintf("unknown driver %q", *driverName)).With("stack", stack.Trace().TrimRuntime())
}
