// Package matchstats records summary statistics of finished (or abandoned) matches, and stores
// them in Parquet files for later analysis.
package matchstats

import (
	"strings"

	"github.com/janpfeifer/pentaGo/internal/generics"
	"github.com/janpfeifer/pentaGo/internal/state"
	"github.com/pkg/errors"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// PlayerRecord holds the result of one player in a match.
type PlayerRecord struct {
	PlayerID     string `parquet:"name=player_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	GoalsReached int32  `parquet:"name=goals_reached, type=INT32"`
}

// Record summarizes one match.
type Record struct {
	MatchID   string         `parquet:"name=match_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rules     string         `parquet:"name=rules, type=BYTE_ARRAY, convertedtype=UTF8"`
	Winner    string         `parquet:"name=winner, type=BYTE_ARRAY, convertedtype=UTF8"`
	Finished  bool           `parquet:"name=finished, type=BOOLEAN"`
	Turns     int32          `parquet:"name=turns, type=INT32"`
	Moves     int32          `parquet:"name=moves, type=INT32"`
	Swaps     int32          `parquet:"name=swaps, type=INT32"`
	Blockers  int32          `parquet:"name=blockers, type=INT32"`
	LastMoves string         `parquet:"name=last_moves, type=BYTE_ARRAY, convertedtype=UTF8"`
	Players   []PlayerRecord `parquet:"name=players, type=LIST"`
}

// numLastMoves is the number of moves kept, in notation, in Record.LastMoves.
const numLastMoves = 5

// New summarizes the board's match.
func New(matchID string, b *state.Board) Record {
	history := b.History()
	r := Record{
		MatchID:  matchID,
		Rules:    b.Rules().String(),
		Winner:   string(b.Winner()),
		Finished: b.IsFinished(),
		Turns:    int32(b.Turn()),
		Moves:    int32(len(history)),
	}
	for _, m := range history {
		switch m.Kind() {
		case state.MoveSwapOwnPiece, state.MoveSwapHostilePieces:
			r.Swaps++
		case state.MoveSetBlack, state.MoveSetGrey:
			r.Blockers++
		}
	}
	last := history[max(len(history)-numLastMoves, 0):]
	r.LastMoves = strings.Join(generics.SliceMap(last, state.Move.Notation), "; ")
	r.Players = generics.SliceMap(b.Players(), func(p state.Player) PlayerRecord {
		return PlayerRecord{PlayerID: string(p.ID), GoalsReached: int32(b.GoalsReached(p.ID))}
	})
	return r
}

// WriteParquet writes the records received from the channel to a Parquet file at path,
// until the channel is closed.
func WriteParquet(path string, records <-chan Record, parallel int64) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", path)
	}
	defer func() { _ = fileWriter.Close() }()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(Record), parallel)
	if err != nil {
		return errors.Wrap(err, "failed to create parquet writer")
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY
	for record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write record of match %q", record.MatchID)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return errors.Wrapf(err, "failed to finish %q", path)
	}
	return errors.Wrapf(fileWriter.Close(), "failed to close %q", path)
}

// ReadParquet reads all records of a file written by WriteParquet.
func ReadParquet(path string, parallel int64) ([]Record, error) {
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}
	defer func() { _ = fileReader.Close() }()

	parquetReader, err := reader.NewParquetReader(fileReader, new(Record), parallel)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}
	defer parquetReader.ReadStop()

	records := make([]Record, int(parquetReader.GetNumRows()))
	if err := parquetReader.Read(&records); err != nil {
		return nil, errors.Wrapf(err, "failed to read records of %q", path)
	}
	return records, nil
}
