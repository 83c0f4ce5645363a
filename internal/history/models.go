package history

// Entry is one row of the per-user query log. ID is the insertion order, so
// recency reads just sort on it descending. URLs are stored exactly as the
// user typed them.
type Entry struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Username string `gorm:"index;not null" json:"-"`
	URL      string `gorm:"column:url;not null" json:"url"`
	Status   string `gorm:"not null" json:"status"`
}

func (Entry) TableName() string { return "history" }
