package models

// Review is created by a customer against a service. Rating is 1-5.
type Review struct {
	ID        string `bson:"id" json:"id"`
	ServiceID string `bson:"serviceId" json:"serviceId"`
	UserID    string `bson:"userId" json:"userId"`
	UserName  string `bson:"userName" json:"userName"`
	Rating    int    `bson:"rating" json:"rating"`
	Comment   string `bson:"comment" json:"comment"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}

// ReviewInput is the review form payload.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
