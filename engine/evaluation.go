package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Piece values in pawns. The king carries no material term: it is never
// captured in a legal game.
const (
	PawnValue   int32 = 1
	KnightValue int32 = 3
	BishopValue int32 = 3
	RookValue   int32 = 5
	QueenValue  int32 = 9
)

var pieceList = []dragontoothmg.Piece{
	dragontoothmg.Pawn,
	dragontoothmg.Knight,
	dragontoothmg.Bishop,
	dragontoothmg.Rook,
	dragontoothmg.Queen,
}

var pieceValue [7]int32

func init() {
	for _, pieceType := range pieceList {
		switch pieceType {
		case dragontoothmg.Pawn:
			pieceValue[pieceType] = PawnValue
		case dragontoothmg.Knight:
			pieceValue[pieceType] = KnightValue
		case dragontoothmg.Bishop:
			pieceValue[pieceType] = BishopValue
		case dragontoothmg.Rook:
			pieceValue[pieceType] = RookValue
		case dragontoothmg.Queen:
			pieceValue[pieceType] = QueenValue
		}
	}
}

// Evaluate scores the position by material balance alone, positive for White.
// It is a pure function of the board contents and never mutates it.
func Evaluate(b *dragontoothmg.Board) int32 {
	return materialCount(&b.White) - materialCount(&b.Black)
}

// materialCount sums the piece values over one side's bitboards.
func materialCount(bb *dragontoothmg.Bitboards) int32 {
	var total int32
	for _, pieceType := range pieceList {
		total += pieceValue[pieceType] * int32(bits.OnesCount64(pieceBitboard(bb, pieceType)))
	}
	return total
}

func pieceBitboard(bb *dragontoothmg.Bitboards, pieceType dragontoothmg.Piece) uint64 {
	switch pieceType {
	case dragontoothmg.Pawn:
		return bb.Pawns
	case dragontoothmg.Knight:
		return bb.Knights
	case dragontoothmg.Bishop:
		return bb.Bishops
	case dragontoothmg.Rook:
		return bb.Rooks
	case dragontoothmg.Queen:
		return bb.Queens
	case dragontoothmg.King:
		return bb.Kings
	}
	return 0
}

// PieceCount reports how many pieces of the given type the side owns.
func PieceCount(b *dragontoothmg.Board, pieceType dragontoothmg.Piece, white bool) int {
	if white {
		return bits.OnesCount64(pieceBitboard(&b.White, pieceType))
	}
	return bits.OnesCount64(pieceBitboard(&b.Black, pieceType))
}
