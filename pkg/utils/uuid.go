package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador de uma carga das planilhas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// GeneratePassword gera uma senha inicial para usuários criados pela migração
func GeneratePassword() (string, error) {
	return gonanoid.Generate(characters, 16)
}
