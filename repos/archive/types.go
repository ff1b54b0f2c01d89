package archive

import "time"

type Record struct {
	MatchID    int64         `firestore:"matchID"`
	GuildID    int64         `firestore:"guildID"`
	GuildName  string        `firestore:"guildName"`
	Link       string        `firestore:"link"`
	Title      string        `firestore:"title"`
	Color      int           `firestore:"color"`
	Fields     []RecordField `firestore:"fields"`
	EndedAt    time.Time     `firestore:"endedAt"`
	ArchivedAt time.Time     `firestore:"archivedAt"`
}

type RecordField struct {
	Name  string `firestore:"name"`
	Value string `firestore:"value"`
}
