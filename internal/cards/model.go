package cards

// Card is one catalog entry from the card API. CanonicalID is set on
// reprints and variants that count as copies of another card; zero means
// the card is its own canonical form.
type Card struct {
	ID           uint64 `json:"id"`
	CanonicalID  uint64 `json:"counts_as_copy_of,omitempty"`
	Name         string `json:"name"`
	Class        Class  `json:"class"`
	Cost         int    `json:"cost"`
	Rarity       Rarity `json:"rarity"`
	Type         string `json:"type"`
	Text         string `json:"text"`
	ImageURL     string `json:"image,omitempty"`
	CropImageURL string `json:"crop_image,omitempty"`
}

type Rarity string

const (
	RarityFree      Rarity = "free"
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type Class string

const (
	ClassDeathKnight Class = "Death Knight"
	ClassDemonHunter Class = "Demon Hunter"
	ClassDruid       Class = "Druid"
	ClassHunter      Class = "Hunter"
	ClassMage        Class = "Mage"
	ClassPaladin     Class = "Paladin"
	ClassPriest      Class = "Priest"
	ClassRogue       Class = "Rogue"
	ClassShaman      Class = "Shaman"
	ClassWarlock     Class = "Warlock"
	ClassWarrior     Class = "Warrior"
	ClassNeutral     Class = "Neutral"
)
