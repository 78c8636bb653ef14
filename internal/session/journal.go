package session

import (
	"encoding/json"
	"io"

	"github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Journal returns an Observer that writes each accepted event to w, as one JSON object per line
// with the encoded event under "event". Use ReadJournal to read it back.
func Journal(w io.Writer, match string) Observer {
	logger := zerolog.New(w).With().Timestamp().Str("match", match).Logger()
	return func(b *state.Board, e Event) {
		data, err := EncodeEvent(e)
		if err != nil {
			logger.Error().Err(err).Msg("failed to encode event")
			return
		}
		logger.Info().
			Int("turn", b.Turn()).
			Str("next", string(b.CurrentPlayer())).
			Stringer("selection", b.Selection()).
			Str("winner", string(b.Winner())).
			RawJSON("event", data).
			Msg("accepted")
	}
}

type journalLine struct {
	Level string          `json:"level"`
	Event json.RawMessage `json:"event"`
}

// ReadJournal decodes the events written by Journal. Lines that don't carry an event are skipped.
func ReadJournal(r io.Reader) ([]Event, error) {
	dec := json.NewDecoder(r)
	var events []Event
	for lineNum := 1; ; lineNum++ {
		var line journalLine
		if err := dec.Decode(&line); err == io.EOF {
			return events, nil
		} else if err != nil {
			return nil, errors.Wrapf(err, "journal line %d", lineNum)
		}
		if len(line.Event) == 0 {
			continue
		}
		e, err := DecodeEvent(line.Event)
		if err != nil {
			return nil, errors.WithMessagef(err, "journal line %d", lineNum)
		}
		events = append(events, e)
	}
}
