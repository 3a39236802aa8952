package zerolog

import (
	"github.com/rs/zerolog"
	"github.com/unkn0wn-root/brcache"
)

var _ brcache.Logger = ZerologLogger{}

type ZerologLogger struct{ L *zerolog.Logger }

func (z ZerologLogger) Debug(msg string, f brcache.Fields) { ev(z.L.Debug(), f).Msg(msg) }
func (z ZerologLogger) Info(msg string, f brcache.Fields)  { ev(z.L.Info(), f).Msg(msg) }
func (z ZerologLogger) Warn(msg string, f brcache.Fields)  { ev(z.L.Warn(), f).Msg(msg) }
func (z ZerologLogger) Error(msg string, f brcache.Fields) { ev(z.L.Error(), f).Msg(msg) }

func ev(e *zerolog.Event, f brcache.Fields) *zerolog.Event {
	if len(f) == 0 {
		return e
	}
	return e.Fields(map[string]interface{}(f))
}
