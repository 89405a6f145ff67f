package messages

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	matchmakingfb "github.com/cbodonnell/flotilla/flatbuffers/matchmaking"
	sessionfb "github.com/cbodonnell/flotilla/flatbuffers/session"
	"github.com/cbodonnell/flotilla/pkg/game/types"
	"github.com/cbodonnell/flotilla/pkg/kinematic"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// SerializeGameSession encodes a session record as a compressed flatbuffer.
func SerializeGameSession(session *types.GameSession) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)
	offset := SerializeGameSessionFlatbuffer(builder, session)
	builder.Finish(offset)

	b, err := compress(builder.FinishedBytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress game session: %v", err)
	}
	return b, nil
}

// DeserializeGameSession is the inverse of SerializeGameSession.
func DeserializeGameSession(data []byte) (*types.GameSession, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress game session: %v", err)
	}

	session, err := DeserializeGameSessionFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize game session: %v", err)
	}
	return session, nil
}

// SerializeMatchmaking encodes the matchmaking record as a compressed
// flatbuffer. Active games are written sorted by player so equal states
// encode to equal bytes.
func SerializeMatchmaking(state *types.MatchmakingState) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)
	offset := SerializeMatchmakingFlatbuffer(builder, state)
	builder.Finish(offset)

	b, err := compress(builder.FinishedBytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress matchmaking state: %v", err)
	}
	return b, nil
}

// DeserializeMatchmaking is the inverse of SerializeMatchmaking.
func DeserializeMatchmaking(data []byte) (*types.MatchmakingState, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress matchmaking state: %v", err)
	}

	state, err := DeserializeMatchmakingFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize matchmaking state: %v", err)
	}
	return state, nil
}

func compress(b []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to write compressed data: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return compressed.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed data: %v", err)
	}
	return b, nil
}

func SerializeGameSessionFlatbuffer(builder *flatbuffers.Builder, session *types.GameSession) flatbuffers.UOffsetT {
	ships := make([]flatbuffers.UOffsetT, 0, len(session.Ships))
	for i := range session.Ships {
		ships = append(ships, SerializeShipFlatbuffer(builder, &session.Ships[i]))
	}
	sessionfb.GameSessionStartShipsVector(builder, len(ships))
	for i := len(ships) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(ships[i])
	}
	shipsVector := builder.EndVector(len(ships))

	sessionfb.GameSessionStartLastActionDataVector(builder, len(session.LastActionData))
	for i := len(session.LastActionData) - 1; i >= 0; i-- {
		builder.PrependUint32(session.LastActionData[i])
	}
	lastActionData := builder.EndVector(len(session.LastActionData))

	player1 := builder.CreateString(string(session.Player1))
	player2 := builder.CreateString(string(session.Player2))
	activePlayer := builder.CreateString(string(session.ActivePlayer))
	winningPlayer := builder.CreateString(string(session.WinningPlayer))

	sessionfb.GameSessionStart(builder)
	sessionfb.GameSessionAddGameId(builder, session.GameID)
	sessionfb.GameSessionAddPlayer1(builder, player1)
	sessionfb.GameSessionAddPlayer2(builder, player2)
	sessionfb.GameSessionAddPlayer1Ready(builder, session.Player1Ready)
	sessionfb.GameSessionAddPlayer2Ready(builder, session.Player2Ready)
	sessionfb.GameSessionAddActivePlayer(builder, activePlayer)
	sessionfb.GameSessionAddWinningPlayer(builder, winningPlayer)
	sessionfb.GameSessionAddLastAction(builder, byte(session.LastAction))
	sessionfb.GameSessionAddLastActionData(builder, lastActionData)
	sessionfb.GameSessionAddTurn(builder, session.Turn)
	sessionfb.GameSessionAddPhase(builder, session.Phase)
	sessionfb.GameSessionAddShips(builder, shipsVector)
	return sessionfb.GameSessionEnd(builder)
}

func SerializeShipFlatbuffer(builder *flatbuffers.Builder, ship *types.Ship) flatbuffers.UOffsetT {
	owner := builder.CreateString(string(ship.Owner))

	sessionfb.ShipStart(builder)
	sessionfb.ShipAddId(builder, ship.ID)
	sessionfb.ShipAddOwner(builder, owner)
	sessionfb.ShipAddPosition(builder, sessionfb.CreateVec2(builder, ship.Position.X, ship.Position.Y))
	sessionfb.ShipAddRotation(builder, ship.Rotation)
	sessionfb.ShipAddHealth(builder, ship.Health)
	sessionfb.ShipAddMinSpeed(builder, ship.MinSpeed)
	sessionfb.ShipAddMaxSpeed(builder, ship.MaxSpeed)
	sessionfb.ShipAddMinAngle(builder, ship.MinAngle)
	sessionfb.ShipAddMaxAngle(builder, ship.MaxAngle)
	sessionfb.ShipAddManeuver(builder, sessionfb.CreateManeuver(builder, ship.Maneuver.Angle, ship.Maneuver.Speed))
	sessionfb.ShipAddWeapon(builder, sessionfb.CreateWeapon(builder, ship.Weapon.Arc, ship.Weapon.Range, ship.Weapon.Damage, ship.Weapon.HitChance))
	sessionfb.ShipAddActivated(builder, ship.Activated)
	return sessionfb.ShipEnd(builder)
}

func DeserializeGameSessionFlatbuffer(b []byte) (session *types.GameSession, err error) {
	defer func() {
		if r := recover(); r != nil {
			session, err = nil, fmt.Errorf("malformed game session: %v", r)
		}
	}()

	fb := sessionfb.GetRootAsGameSession(b, 0)
	session = &types.GameSession{
		GameID:         fb.GameId(),
		Player1:        types.PlayerID(fb.Player1()),
		Player2:        types.PlayerID(fb.Player2()),
		Player1Ready:   fb.Player1Ready(),
		Player2Ready:   fb.Player2Ready(),
		ActivePlayer:   types.PlayerID(fb.ActivePlayer()),
		WinningPlayer:  types.PlayerID(fb.WinningPlayer()),
		LastAction:     types.LastAction(fb.LastAction()),
		LastActionData: make([]uint32, fb.LastActionDataLength()),
		Turn:           fb.Turn(),
		Phase:          fb.Phase(),
		Ships:          make([]types.Ship, fb.ShipsLength()),
	}
	for i := range session.LastActionData {
		session.LastActionData[i] = fb.LastActionData(i)
	}

	shipFlatbuffer := &sessionfb.Ship{}
	for i := range session.Ships {
		if !fb.Ships(shipFlatbuffer, i) {
			return nil, fmt.Errorf("failed to get ship at index %d", i)
		}
		session.Ships[i] = ShipFlatbufferToShip(shipFlatbuffer)
	}

	return session, nil
}

func ShipFlatbufferToShip(fb *sessionfb.Ship) types.Ship {
	ship := types.Ship{
		ID:        fb.Id(),
		Owner:     types.PlayerID(fb.Owner()),
		Rotation:  fb.Rotation(),
		Health:    fb.Health(),
		MinSpeed:  fb.MinSpeed(),
		MaxSpeed:  fb.MaxSpeed(),
		MinAngle:  fb.MinAngle(),
		MaxAngle:  fb.MaxAngle(),
		Activated: fb.Activated(),
	}
	if position := fb.Position(nil); position != nil {
		ship.Position = kinematic.Vector{X: position.X(), Y: position.Y()}
	}
	if maneuver := fb.Maneuver(nil); maneuver != nil {
		ship.Maneuver = types.Maneuver{Angle: maneuver.Angle(), Speed: maneuver.Speed()}
	}
	if weapon := fb.Weapon(nil); weapon != nil {
		ship.Weapon = types.Weapon{
			Arc:       weapon.Arc(),
			Range:     weapon.Range(),
			Damage:    weapon.Damage(),
			HitChance: weapon.HitChance(),
		}
	}
	return ship
}

func SerializeMatchmakingFlatbuffer(builder *flatbuffers.Builder, state *types.MatchmakingState) flatbuffers.UOffsetT {
	players := make([]types.PlayerID, 0, len(state.ActiveGames))
	for player := range state.ActiveGames {
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i] < players[j] })

	activeGames := make([]flatbuffers.UOffsetT, 0, len(players))
	for _, player := range players {
		key := builder.CreateString(string(player))

		matchmakingfb.ActiveGameStart(builder)
		matchmakingfb.ActiveGameAddPlayer(builder, key)
		matchmakingfb.ActiveGameAddGameId(builder, state.ActiveGames[player])
		activeGames = append(activeGames, matchmakingfb.ActiveGameEnd(builder))
	}
	matchmakingfb.MatchmakingStartActiveGamesVector(builder, len(activeGames))
	for i := len(activeGames) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(activeGames[i])
	}
	activeGamesVector := builder.EndVector(len(activeGames))

	queue := make([]flatbuffers.UOffsetT, 0, len(state.Queue))
	for _, player := range state.Queue {
		queue = append(queue, builder.CreateString(string(player)))
	}
	matchmakingfb.MatchmakingStartQueueVector(builder, len(queue))
	for i := len(queue) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(queue[i])
	}
	queueVector := builder.EndVector(len(queue))

	matchmakingfb.MatchmakingStart(builder)
	matchmakingfb.MatchmakingAddQueue(builder, queueVector)
	matchmakingfb.MatchmakingAddActiveGames(builder, activeGamesVector)
	return matchmakingfb.MatchmakingEnd(builder)
}

func DeserializeMatchmakingFlatbuffer(b []byte) (state *types.MatchmakingState, err error) {
	defer func() {
		if r := recover(); r != nil {
			state, err = nil, fmt.Errorf("malformed matchmaking state: %v", r)
		}
	}()

	fb := matchmakingfb.GetRootAsMatchmaking(b, 0)
	state = &types.MatchmakingState{
		Queue:       make([]types.PlayerID, fb.QueueLength()),
		ActiveGames: make(map[types.PlayerID]uint64, fb.ActiveGamesLength()),
	}
	for i := range state.Queue {
		state.Queue[i] = types.PlayerID(fb.Queue(i))
	}

	activeGame := &matchmakingfb.ActiveGame{}
	for i := 0; i < fb.ActiveGamesLength(); i++ {
		if !fb.ActiveGames(activeGame, i) {
			return nil, fmt.Errorf("failed to get active game at index %d", i)
		}
		state.ActiveGames[types.PlayerID(activeGame.Player())] = activeGame.GameId()
	}

	return state, nil
}
