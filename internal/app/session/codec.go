package session

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"driftisle/internal/domain/survival"
	"driftisle/internal/domain/world"
)

// SchemaVersion guards the persisted record layout. Records carrying an
// unknown version are treated as unparsable and fall back to defaults.
const SchemaVersion = 1

type envelope struct {
	SchemaVersion int    `json:"schema_version"`
	Compressed    bool   `json:"compressed,omitempty"`
	Body          []byte `json:"body"`
}

var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

func seal(body []byte, compress bool) ([]byte, error) {
	if compress {
		body = zstdEncoder.EncodeAll(body, nil)
	}
	return json.Marshal(envelope{SchemaVersion: SchemaVersion, Compressed: compress, Body: body})
}

func open(payload []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("unknown schema version %d", env.SchemaVersion)
	}
	if !env.Compressed {
		return env.Body, nil
	}
	body, err := zstdDecoder.DecodeAll(env.Body, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress body: %w", err)
	}
	return body, nil
}

// EncodeWorld compresses the grid payload; it dominates the save size.
func EncodeWorld(g *world.Grid) ([]byte, error) {
	body, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return seal(body, true)
}

func DecodeWorld(payload []byte) (*world.Grid, error) {
	body, err := open(payload)
	if err != nil {
		return nil, err
	}
	var g world.Grid
	if err := json.Unmarshal(body, &g); err != nil {
		return nil, fmt.Errorf("decode world: %w", err)
	}
	if g.Width <= 0 || g.Height <= 0 || len(g.Tiles) != g.Width*g.Height {
		return nil, fmt.Errorf("inconsistent world dimensions %dx%d", g.Width, g.Height)
	}
	return &g, nil
}

func EncodePlayer(p *survival.Player) ([]byte, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return seal(body, false)
}

func DecodePlayer(payload []byte) (*survival.Player, error) {
	body, err := open(payload)
	if err != nil {
		return nil, err
	}
	var p survival.Player
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &p, nil
}

func EncodeState(st *survival.GameState) ([]byte, error) {
	body, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	return seal(body, false)
}

func DecodeState(payload []byte) (*survival.GameState, error) {
	body, err := open(payload)
	if err != nil {
		return nil, err
	}
	var st survival.GameState
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	return &st, nil
}
