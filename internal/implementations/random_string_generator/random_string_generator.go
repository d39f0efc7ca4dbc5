package randomstringgenerator

import (
	"math/rand"
	"roleplay/internal/core/domain/user"
	"time"
)

const RESET_TOKEN_LENGTH = 64

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	rand.Seed(time.Now().UnixNano())
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GenerateResetToken() user.ResetToken {
	b := make([]rune, RESET_TOKEN_LENGTH)
	for i := range b {
		b[i] = g.chars[rand.Intn(len(g.chars))]
	}
	return user.ResetToken(b)
}
