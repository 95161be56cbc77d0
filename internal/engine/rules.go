package engine

import (
	"github.com/lgbarn/chess-service-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
//
// It is reported alongside the status but never ends the game.
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		kind := piece.Kind()

		// Kings don't count for material
		if kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
			return false
		}

		if piece.Colour() == chess.White {
			whitePieces = append(whitePieces, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
