package repositories

// LegacyFields names the column pair an item type had in legacy_stocks
// before the dynamic item-type model existed.
type LegacyFields struct {
	BoxesColumn string
	UnitsColumn string
}

// legacyFieldMapping covers exactly the item types that existed when the
// legacy schema was frozen. Item types added later are absent on purpose:
// they have no legacy columns to fall back to or mirror into.
var legacyFieldMapping = map[string]LegacyFields{
	"n950":       {BoxesColumn: "n950_boxes", UnitsColumn: "n950_units"},
	"i9000s":     {BoxesColumn: "i9000s_boxes", UnitsColumn: "i9000s_units"},
	"paper_roll": {BoxesColumn: "paper_roll_boxes", UnitsColumn: "paper_roll_units"},
	"sim_card":   {BoxesColumn: "sim_card_boxes", UnitsColumn: "sim_card_units"},
	"battery":    {BoxesColumn: "battery_boxes", UnitsColumn: "battery_units"},
	"sticker":    {BoxesColumn: "sticker_boxes", UnitsColumn: "sticker_units"},
}

// LegacyFieldsFor is a pure lookup: the column pair for itemTypeID, or
// ok=false when the item type postdates the legacy schema.
func LegacyFieldsFor(itemTypeID string) (LegacyFields, bool) {
	f, ok := legacyFieldMapping[itemTypeID]
	return f, ok
}
