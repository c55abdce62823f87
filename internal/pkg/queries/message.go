package queries

func Conversation(userID, peerID string) Filter {
	return Or(
		And(Eq("senderId", userID), Eq("recipientId", peerID)),
		And(Eq("senderId", peerID), Eq("recipientId", userID)),
	)
}
