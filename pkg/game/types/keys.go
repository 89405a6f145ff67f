package types

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// RecordNamespace scopes every storage key derived by this deployment.
var RecordNamespace = uuid.MustParse("6f1f6c8e-2b8a-4c59-9a43-1f0e3d7c5b21")

// SessionKey derives the storage key of a game session from its id.
// The key's leading bytes also seed the session's random stream.
func SessionKey(gameID uint64) uuid.UUID {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], gameID)
	return uuid.NewSHA1(RecordNamespace, append([]byte("session:"), b[:]...))
}

// MatchmakingKey is the well-known key of the matchmaking record.
func MatchmakingKey() uuid.UUID {
	return uuid.NewSHA1(RecordNamespace, []byte("matchmaking"))
}
