package catalog

import "github.com/poiesic/loadsmith/core"

// Fixture bucket/stat hashes re-exported for test readability.
const (
	fixtureKinetic = 1498876634
	fixtureEnergy  = 2465295065
	fixturePower   = 953998645
	fixtureHelmet  = 3448274439
	fixtureChest   = 14239492

	fixtureDiscipline = 1735777505
	fixtureRecovery   = 1943323491
)

// SampleRawRecords returns a small, deterministic catalog fixture used by
// tests across packages: exotic armor and weapons, grenade-themed mods,
// subclass components, and records that must be rejected by indexing.
func SampleRawRecords() []core.RawItemRecord {
	return []core.RawItemRecord{
		{
			Hash:            3531075476,
			Name:            "Heart of Inmost Light",
			Description:     "Using an ability empowers the other two. Empowered abilities recharge faster and grant ability energy.",
			TypeCode:        2,
			TypeDisplayName: "Chest Armor",
			BucketHash:      fixtureChest,
			ClassCode:       0, // titan
			TierCode:        6, // exotic
			Stats:           map[uint32]int{fixtureDiscipline: 18, fixtureRecovery: 6},
		},
		{
			Hash:            212971158,
			Name:            "Armamentarium",
			Description:     "Gain an additional grenade charge.",
			TypeCode:        2,
			TypeDisplayName: "Chest Armor",
			BucketHash:      fixtureChest,
			ClassCode:       0,
			TierCode:        6,
			Stats:           map[uint32]int{fixtureDiscipline: 20},
		},
		{
			Hash:            1363886209,
			Name:            "Gjallarhorn",
			Description:     "Wolfpack Rounds track targets after detonation. Devastating boss damage.",
			TypeCode:        3,
			TypeDisplayName: "Rocket Launcher",
			BucketHash:      fixturePower,
			ClassCode:       3,
			DamageCode:      3, // solar
			TierCode:        6,
		},
		{
			Hash:            2171478765,
			Name:            "Fatebringer",
			Description:     "Delivering the inevitable, one bullet at a time.",
			TypeCode:        3,
			TypeDisplayName: "Hand Cannon",
			BucketHash:      fixtureKinetic,
			ClassCode:       3,
			DamageCode:      1, // kinetic
			TierCode:        5, // legendary
		},
		{
			Hash:            3183180185,
			Name:            "Funnelweb",
			Description:     "A void submachine gun woven for the endgame.",
			TypeCode:        3,
			TypeDisplayName: "Submachine Gun",
			BucketHash:      fixtureEnergy,
			ClassCode:       3,
			DamageCode:      4, // void
			TierCode:        5,
		},
		{
			Hash:            1484685887,
			Name:            "Firepower",
			Description:     "Your grenade final blows create Orbs of Power.",
			TypeCode:        19,
			TypeDisplayName: "Armor Mod",
			ClassCode:       3,
			TierCode:        2,
		},
		{
			Hash:            3185435908,
			Name:            "Bomber",
			Description:     "Reduces grenade cooldown when using your class ability.",
			TypeCode:        19,
			TypeDisplayName: "Armor Mod",
			ClassCode:       3,
			TierCode:        2,
		},
		{
			Hash:            1180408010,
			Name:            "Innervation",
			Description:     "Reduces grenade cooldown each time you pick up an Orb of Power.",
			TypeCode:        19,
			TypeDisplayName: "Armor Mod",
			ClassCode:       3,
			TierCode:        2,
		},
		{
			Hash:            2321824287,
			Name:            "Touch of Thunder",
			Description:     "Aspect: your Flashbang, Pulse, and Lightning Grenades have enhanced functionality.",
			TypeCode:        16,
			TypeDisplayName: "Arc Aspect",
			BucketHash:      3284755031,
			ClassCode:       0,
			DamageCode:      2, // arc
			TierCode:        2,
		},
		{
			Hash:            3469412975,
			Name:            "Spark of Shock",
			Description:     "Fragment: your Arc grenades jolt targets.",
			TypeCode:        16,
			TypeDisplayName: "Arc Fragment",
			BucketHash:      3284755031,
			ClassCode:       3,
			DamageCode:      2,
			TierCode:        2,
		},
		// Rejected records below.
		{
			Hash: 999000001,
			Name: "",
		},
		{
			Hash:     999000002,
			Name:     "Classified Plate",
			Redacted: true,
			TypeCode: 2,
		},
		{
			Hash:     999000003,
			Name:     "Weapon Test Harness",
			TypeCode: 3,
		},
	}
}

// SampleVersion is the catalog version used with SampleRawRecords.
const SampleVersion = "fixture.1"
