package models

type Translation struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Locale string `bson:"locale" json:"locale"`
	Key    string `bson:"key" json:"key"`
	Value  string `bson:"value" json:"value"`
}
