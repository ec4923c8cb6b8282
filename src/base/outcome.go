package base

// Reason explains why a move was not applied.
type Reason uint8

const (
	ReasonNone Reason = iota
	PieceNotFound
	OwnPieceBlocked
	ShapeInvalid
	PathBlocked
	LeavesKingInCheck
	CastleBlocked
	PromotionPending
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case PieceNotFound:
		return "piece not found"
	case OwnPieceBlocked:
		return "own piece blocked"
	case ShapeInvalid:
		return "shape invalid"
	case PathBlocked:
		return "path blocked"
	case LeavesKingInCheck:
		return "leaves king in check"
	case CastleBlocked:
		return "castle blocked"
	case PromotionPending:
		return "promotion pending"
	default:
		return "unknown"
	}
}

// MoveOutcome is the result of a move attempt. When Applied is false,
// Reason is set and the board is unchanged.
type MoveOutcome struct {
	Applied          bool
	Reason           Reason
	From             Square
	To               Square
	Castled          bool
	Promoted         bool
	PromotionPending bool
	Captured         Piece
	// status of the side to move once the move is complete
	Status GameStatus
}

func Illegal(from, to Square, r Reason) MoveOutcome {
	return MoveOutcome{From: from, To: to, Reason: r}
}
