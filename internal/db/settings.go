package db

import (
	"context"
	"log"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// The user-editable settings: one message template per transition, the
// stand-in name for private calls, and the preferred speech voice.
const (
	KeyJoin        = "join"
	KeyLeave       = "leave"
	KeyJoinSelf    = "joinSelf"
	KeyMoveSelf    = "moveSelf"
	KeyLeaveSelf   = "leaveSelf"
	KeyPrivateCall = "privateCall"
	KeyVoice       = "voice"
)

// Defaults holds the value each setting falls back to when never edited.
// An empty voice means the speech engine's default.
var Defaults = map[string]string{
	KeyJoin:        "$user joined $channel",
	KeyLeave:       "$user left $channel",
	KeyJoinSelf:    "You joined $channel",
	KeyMoveSelf:    "You were moved to $channel",
	KeyLeaveSelf:   "You left $channel",
	KeyPrivateCall: "The call",
	KeyVoice:       "",
}

// TemplateKeys lists the message-template settings in display order.
var TemplateKeys = []string{KeyJoin, KeyLeave, KeyJoinSelf, KeyMoveSelf, KeyLeaveSelf, KeyPrivateCall}

// GetSetting returns the stored value for a key, or its default when the
// key was never written or the database is unavailable.
func (db DatabasePool) GetSetting(key string) string {
	if !db.Enabled {
		return Defaults[key]
	}

	conn, err := db.pool.Take(context.TODO())
	if err != nil {
		log.Printf("could not get new connection from database: %s", err)
		return Defaults[key]
	}
	defer db.pool.Put(conn)

	value, found := "", false
	err = sqlitex.Execute(conn, `
		SELECT value FROM settings
		WHERE key = ?;`,
		&sqlitex.ExecOptions{
			Args: []any{key},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				value = stmt.ColumnText(0)
				found = true
				return nil
			},
		})
	if err != nil {
		log.Printf("could not read setting %q from database: %s", key, err)
		return Defaults[key]
	}

	if !found {
		return Defaults[key]
	}
	return value
}

// SetSetting stores a value for a key, overwriting any previous one.
func (db DatabasePool) SetSetting(key string, value string) {
	if !db.Enabled {
		return
	}

	conn, err := db.pool.Take(context.TODO())
	if err != nil {
		log.Printf("could not get new connection from database: %s", err)
		return
	}
	defer db.pool.Put(conn)

	err = sqlitex.Execute(conn, `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`,
		&sqlitex.ExecOptions{
			Args: []any{key, value},
		})
	if err != nil {
		log.Printf("could not save setting %q to database: %s", key, err)
	}
}
