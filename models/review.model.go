package models

// Review is a static customer review attached to a catalog product
type Review struct {
	ProductID int    `bson:"product_id" json:"productId"`
	Author    string `bson:"author" json:"author"`
	Rating    int    `bson:"rating" json:"rating"`
	Text      string `bson:"text" json:"text"`
}
