package domain

// Kind identifies the type of a stored entity. It doubles as the partition
// key of the entity store.
type Kind string

const (
	KindUser       Kind = "USER"
	KindStatistics Kind = "STATISTICS"
	KindDeck       Kind = "DECK"
	KindCard       Kind = "CARD"
	KindAnswer     Kind = "ANSWER"
	KindComment    Kind = "COMMENT"
	KindReply      Kind = "REPLY"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindUser, KindStatistics, KindDeck, KindCard, KindAnswer, KindComment, KindReply:
		return true
	}
	return false
}

// Likeable reports whether users can like entities of this kind.
func (k Kind) Likeable() bool {
	switch k {
	case KindDeck, KindAnswer, KindComment:
		return true
	}
	return false
}

// Visibility controls who may see and receive a deck.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityFriends Visibility = "FRIENDS"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityFriends:
		return true
	}
	return false
}
