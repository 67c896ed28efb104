package ledarray

// This file contains an Output that sends frames to one or more fadecandy
// devices through an Open Pixel Control server such as fcserver.  Frames that
// are identical to the last one sent are not retransmitted.

import (
	"bytes"
	"image/color"

	"github.com/karlmutch/errors"

	"github.com/cnf/structhash"

	"github.com/kellydunn/go-opc"
)

type opcFrame struct {
	Pixels []color.RGBA
}

// OPCOutput writes frames to an OPC server
type OPCOutput struct {
	server string
	client *opc.Client
	layout *Layout
	last   []byte
}

// NewOPCOutput connects to the OPC server at the tcp address given
func NewOPCOutput(server string, layout *Layout) (out *OPCOutput, err errors.Error) {
	oc := opc.NewClient()
	if errGo := oc.Connect("tcp", server); errGo != nil {
		return nil, kindError(ErrDriver).With("error", errGo.Error()).With("url", server)
	}
	logger.Debug("connected to opc server", "url", server, "channels", layout.Channels())

	return &OPCOutput{
		server: server,
		client: oc,
		layout: layout,
		last:   []byte{},
	}, nil
}

func (out *OPCOutput) Write(frame []color.RGBA) (err errors.Error) {
	hash := structhash.Md5(opcFrame{Pixels: frame}, 1)
	if bytes.Equal(out.last, hash) {
		return nil
	}

	channels, err := out.layout.Split(frame)
	if err != nil {
		return err.With("url", out.server)
	}

	for _, ch := range out.layout.Channels() {
		pixels := channels[ch]

		m := opc.NewMessage(ch)
		m.SetLength(uint16(len(pixels) * 3))
		for i, c := range pixels {
			m.SetPixelColor(i, c.R, c.G, c.B)
		}

		if errGo := out.client.Send(m); errGo != nil {
			return kindError(ErrDriver).With("error", errGo.Error()).With("url", out.server).With("channel", ch)
		}
	}

	out.last = hash
	return nil
}
