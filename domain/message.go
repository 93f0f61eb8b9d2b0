package domain

type Message struct {
	Tokens  []string
	Payload Payload
}
