package messages

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cbodonnell/flotilla/pkg/game"
	"github.com/cbodonnell/flotilla/pkg/game/types"
)

// InstructionTag is the leading byte of an encoded instruction.
type InstructionTag byte

// Instruction tags
const (
	TagJoinQueue       InstructionTag = 11
	TagLeaveQueue      InstructionTag = 12
	TagCloseGame       InstructionTag = 21
	TagUpgrade         InstructionTag = 22
	TagCommitManeuvers InstructionTag = 23
	TagFireWeapon      InstructionTag = 24
	TagSkip            InstructionTag = 25
)

func (t InstructionTag) String() string {
	switch t {
	case TagJoinQueue:
		return "join_queue"
	case TagLeaveQueue:
		return "leave_queue"
	case TagCloseGame:
		return "close_game"
	case TagUpgrade:
		return "upgrade"
	case TagCommitManeuvers:
		return "commit_maneuvers"
	case TagFireWeapon:
		return "fire_weapon"
	case TagSkip:
		return "skip"
	default:
		return fmt.Sprintf("tag(%d)", byte(t))
	}
}

var (
	ErrEmptyInstruction   = errors.New("empty instruction")
	ErrUnknownInstruction = errors.New("unknown instruction")
)

// Instruction is one of the operations a player can submit. The set of
// implementations is closed: JoinQueue, LeaveQueue, CloseGame, Upgrade,
// CommitManeuvers, FireWeapon and Skip.
type Instruction interface {
	Tag() InstructionTag
}

// SessionInstruction is an instruction addressed to a single game session.
type SessionInstruction interface {
	Instruction
	Session() uint64
}

type JoinQueue struct {
	GameID uint64 `json:"gameID"`
}

type LeaveQueue struct{}

type CloseGame struct {
	GameID uint64 `json:"gameID"`
}

type Upgrade struct {
	GameID    uint64         `json:"gameID"`
	ShipID    uint32         `json:"shipID"`
	UpgradeID game.UpgradeID `json:"upgradeID"`
}

type CommitManeuvers struct {
	GameID    uint64                    `json:"gameID"`
	Maneuvers map[uint32]types.Maneuver `json:"maneuvers"`
}

type FireWeapon struct {
	GameID   uint64 `json:"gameID"`
	ShipID   uint32 `json:"shipID"`
	TargetID uint32 `json:"targetID"`
}

type Skip struct {
	GameID uint64 `json:"gameID"`
	ShipID uint32 `json:"shipID"`
}

func (JoinQueue) Tag() InstructionTag       { return TagJoinQueue }
func (LeaveQueue) Tag() InstructionTag      { return TagLeaveQueue }
func (CloseGame) Tag() InstructionTag       { return TagCloseGame }
func (Upgrade) Tag() InstructionTag         { return TagUpgrade }
func (CommitManeuvers) Tag() InstructionTag { return TagCommitManeuvers }
func (FireWeapon) Tag() InstructionTag      { return TagFireWeapon }
func (Skip) Tag() InstructionTag            { return TagSkip }

func (i JoinQueue) Session() uint64       { return i.GameID }
func (i CloseGame) Session() uint64       { return i.GameID }
func (i Upgrade) Session() uint64         { return i.GameID }
func (i CommitManeuvers) Session() uint64 { return i.GameID }
func (i FireWeapon) Session() uint64      { return i.GameID }
func (i Skip) Session() uint64            { return i.GameID }

// DecodeInstruction reads an instruction from its wire form: the tag byte
// followed by a JSON payload. An empty payload decodes to the zero value.
func DecodeInstruction(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInstruction
	}

	tag := InstructionTag(b[0])
	payload := b[1:]

	var instruction Instruction
	switch tag {
	case TagJoinQueue:
		instruction = &JoinQueue{}
	case TagLeaveQueue:
		instruction = &LeaveQueue{}
	case TagCloseGame:
		instruction = &CloseGame{}
	case TagUpgrade:
		instruction = &Upgrade{}
	case TagCommitManeuvers:
		instruction = &CommitManeuvers{}
	case TagFireWeapon:
		instruction = &FireWeapon{}
	case TagSkip:
		instruction = &Skip{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownInstruction, byte(tag))
	}

	if len(payload) > 0 {
		if err := json.Unmarshal(payload, instruction); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", tag, err)
		}
	}

	return instruction, nil
}

// EncodeInstruction is the inverse of DecodeInstruction.
func EncodeInstruction(instruction Instruction) ([]byte, error) {
	payload, err := json.Marshal(instruction)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", instruction.Tag(), err)
	}

	b := make([]byte, 0, len(payload)+1)
	b = append(b, byte(instruction.Tag()))
	b = append(b, payload...)
	return b, nil
}
