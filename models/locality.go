package models

type Country struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

type State struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	UF        string `json:"uf" gorm:"column:uf;type:varchar(2)"`
	CountryID uint   `json:"countryId"`
}

type City struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name"`
	StateID uint   `json:"stateId"`
	State   *State `json:"state,omitempty" gorm:"foreignKey:StateID"`
}
