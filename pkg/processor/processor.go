package processor

import (
	"context"
	"fmt"

	"github.com/cbodonnell/flotilla/pkg/game"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/log"
	"github.com/cbodonnell/flotilla/pkg/messages"
	"github.com/cbodonnell/flotilla/pkg/repositories"
	"github.com/google/uuid"
)

// Request is one submitted instruction.
type Request struct {
	Caller types.PlayerID
	// IsSigner is true when Caller authenticated the request.
	IsSigner bool
	// SessionKey is optional. When set it must match the key derived from
	// the instruction's game id.
	SessionKey uuid.UUID
	Data       []byte
}

// Result is what an accepted instruction produced.
type Result struct {
	Instruction messages.Instruction
	// Session is nil for instructions that only touch matchmaking, and for
	// a join that did not make a pair.
	Session     *types.GameSession
	Matchmaking *types.MatchmakingState
	Fire        *game.FireResult
}

type Processor struct {
	repository repositories.Repository
}

type NewProcessorOptions struct {
	Repository repositories.Repository
}

func NewProcessor(opts NewProcessorOptions) *Processor {
	return &Processor{
		repository: opts.Repository,
	}
}

// Process validates, applies and persists one request. A rejected request
// returns a *game.RejectionError and leaves storage untouched; any other
// error comes from storage or record decoding.
func (p *Processor) Process(ctx context.Context, req *Request) (*Result, error) {
	if !req.IsSigner {
		return nil, game.Reject(game.KindAuthorization, game.ErrMissingSignature)
	}

	instruction, err := messages.DecodeInstruction(req.Data)
	if err != nil {
		return nil, game.Reject(game.KindPrecondition, err)
	}

	if si, ok := instruction.(messages.SessionInstruction); ok {
		if req.SessionKey != uuid.Nil && req.SessionKey != types.SessionKey(si.Session()) {
			return nil, game.Reject(game.KindAddressing, game.ErrInvalidKey)
		}
	}

	result := &Result{
		Instruction: instruction,
	}

	switch i := instruction.(type) {
	case *messages.JoinQueue:
		err = p.joinQueue(ctx, req.Caller, i, result)
	case *messages.LeaveQueue:
		err = p.leaveQueue(ctx, req.Caller, result)
	case *messages.CloseGame:
		err = p.closeGame(ctx, req.Caller, i, result)
	case *messages.CommitManeuvers:
		err = p.updateSession(ctx, i.GameID, result, func(session *types.GameSession) (*types.GameSession, error) {
			return game.CommitManeuvers(session, req.Caller, i.Maneuvers)
		})
	case *messages.FireWeapon:
		err = p.updateSession(ctx, i.GameID, result, func(session *types.GameSession) (*types.GameSession, error) {
			next, fire, err := game.FireWeapon(session, types.SessionKey(i.GameID), req.Caller, i.ShipID, i.TargetID)
			result.Fire = fire
			return next, err
		})
	case *messages.Upgrade:
		err = p.updateSession(ctx, i.GameID, result, func(session *types.GameSession) (*types.GameSession, error) {
			return game.Upgrade(session, req.Caller, i.ShipID, i.UpgradeID)
		})
	case *messages.Skip:
		err = p.updateSession(ctx, i.GameID, result, func(session *types.GameSession) (*types.GameSession, error) {
			return game.Skip(session, req.Caller, i.ShipID)
		})
	default:
		err = game.Reject(game.KindPrecondition, messages.ErrUnknownInstruction)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (p *Processor) joinQueue(ctx context.Context, caller types.PlayerID, i *messages.JoinQueue, result *Result) error {
	state, stateVersion, err := p.loadMatchmaking(ctx)
	if err != nil {
		return err
	}

	nextState, session := game.JoinQueue(state, caller, i.GameID)
	if session != nil {
		// a paired session replaces whatever was stored under the id
		_, sessionVersion, err := p.loadSession(ctx, i.GameID)
		if err != nil {
			return err
		}
		if err := p.storeSession(ctx, session, sessionVersion); err != nil {
			return err
		}
	}
	if err := p.storeMatchmaking(ctx, nextState, stateVersion); err != nil {
		return err
	}

	result.Session = session
	result.Matchmaking = nextState
	return nil
}

func (p *Processor) leaveQueue(ctx context.Context, caller types.PlayerID, result *Result) error {
	state, version, err := p.loadMatchmaking(ctx)
	if err != nil {
		return err
	}

	nextState := game.LeaveQueue(state, caller)
	if err := p.storeMatchmaking(ctx, nextState, version); err != nil {
		return err
	}

	result.Matchmaking = nextState
	return nil
}

func (p *Processor) closeGame(ctx context.Context, caller types.PlayerID, i *messages.CloseGame, result *Result) error {
	session, sessionVersion, err := p.loadSession(ctx, i.GameID)
	if err != nil {
		return err
	}
	state, stateVersion, err := p.loadMatchmaking(ctx)
	if err != nil {
		return err
	}

	nextState, nextSession, err := game.CloseGame(state, session, caller)
	if err != nil {
		return err
	}

	if err := p.storeSession(ctx, nextSession, sessionVersion); err != nil {
		return err
	}
	if err := p.storeMatchmaking(ctx, nextState, stateVersion); err != nil {
		return err
	}

	result.Session = nextSession
	result.Matchmaking = nextState
	return nil
}

func (p *Processor) updateSession(ctx context.Context, gameID uint64, result *Result, apply func(*types.GameSession) (*types.GameSession, error)) error {
	session, version, err := p.loadSession(ctx, gameID)
	if err != nil {
		return err
	}

	next, err := apply(session)
	if err != nil {
		return err
	}

	if err := p.storeSession(ctx, next, version); err != nil {
		return err
	}

	result.Session = next
	return nil
}

// loadSession returns the stored session for gameID, or a fresh unpaired
// one if nothing is stored yet.
func (p *Processor) loadSession(ctx context.Context, gameID uint64) (*types.GameSession, uint64, error) {
	key := types.SessionKey(gameID)
	record, err := p.repository.Load(ctx, key)
	if err != nil {
		if repositories.IsNotFound(err) {
			return types.NewGameSession(gameID), 0, nil
		}
		return nil, 0, fmt.Errorf("failed to load session %d: %w", gameID, err)
	}

	session, err := messages.DeserializeGameSession(record.Data)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode session %d: %w", gameID, err)
	}
	return session, record.Version, nil
}

// loadMatchmaking returns the matchmaking record, or an empty one if
// nothing is stored yet.
func (p *Processor) loadMatchmaking(ctx context.Context) (*types.MatchmakingState, uint64, error) {
	record, err := p.repository.Load(ctx, types.MatchmakingKey())
	if err != nil {
		if repositories.IsNotFound(err) {
			return types.NewMatchmakingState(), 0, nil
		}
		return nil, 0, fmt.Errorf("failed to load matchmaking state: %w", err)
	}

	state, err := messages.DeserializeMatchmaking(record.Data)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode matchmaking state: %w", err)
	}
	return state, record.Version, nil
}

func (p *Processor) storeSession(ctx context.Context, session *types.GameSession, version uint64) error {
	data, err := messages.SerializeGameSession(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %d: %w", session.GameID, err)
	}

	next, err := p.repository.Store(ctx, types.SessionKey(session.GameID), &repositories.Record{Version: version, Data: data})
	if err != nil {
		return fmt.Errorf("failed to store session %d: %w", session.GameID, err)
	}

	log.Trace("Stored session %d at version %d", session.GameID, next)
	return nil
}

func (p *Processor) storeMatchmaking(ctx context.Context, state *types.MatchmakingState, version uint64) error {
	data, err := messages.SerializeMatchmaking(state)
	if err != nil {
		return fmt.Errorf("failed to encode matchmaking state: %w", err)
	}

	next, err := p.repository.Store(ctx, types.MatchmakingKey(), &repositories.Record{Version: version, Data: data})
	if err != nil {
		return fmt.Errorf("failed to store matchmaking state: %w", err)
	}

	log.Trace("Stored matchmaking state at version %d", next)
	return nil
}
