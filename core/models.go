package core

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ItemHash is the stable catalog identifier of a single item definition.
// Hashes are unique within one catalog version.
type ItemHash uint32

// Category is the discriminant for the kind of a catalog item.
type Category int

const (
	CategoryOther Category = iota
	CategoryWeapon
	CategoryArmor
	CategoryMod
	CategorySubclass
)

// String returns the lower-cased category name used in tags and search tokens.
func (c Category) String() string {
	switch c {
	case CategoryWeapon:
		return "weapon"
	case CategoryArmor:
		return "armor"
	case CategoryMod:
		return "mod"
	case CategorySubclass:
		return "subclass"
	default:
		return "other"
	}
}

// Slot is an equipment position an item can occupy.
type Slot int

const (
	SlotNone Slot = iota
	SlotKinetic
	SlotEnergy
	SlotPower
	SlotHelmet
	SlotArms
	SlotChest
	SlotLegs
	SlotClassItem
	SlotSubclass
)

func (s Slot) String() string {
	switch s {
	case SlotKinetic:
		return "kinetic"
	case SlotEnergy:
		return "energy"
	case SlotPower:
		return "power"
	case SlotHelmet:
		return "helmet"
	case SlotArms:
		return "arms"
	case SlotChest:
		return "chest"
	case SlotLegs:
		return "legs"
	case SlotClassItem:
		return "class item"
	case SlotSubclass:
		return "subclass"
	default:
		return "none"
	}
}

// GuardianClass is a class restriction on an item, or the class a query asks
// for. ClassAny means no restriction.
type GuardianClass int

const (
	ClassAny GuardianClass = iota
	ClassTitan
	ClassHunter
	ClassWarlock
)

func (g GuardianClass) String() string {
	switch g {
	case ClassTitan:
		return "titan"
	case ClassHunter:
		return "hunter"
	case ClassWarlock:
		return "warlock"
	default:
		return "any"
	}
}

// Element is the damage type of an item or the element a query asks for.
type Element int

const (
	ElementNone Element = iota
	ElementKinetic
	ElementArc
	ElementSolar
	ElementVoid
	ElementStasis
	ElementStrand
)

func (e Element) String() string {
	switch e {
	case ElementKinetic:
		return "kinetic"
	case ElementArc:
		return "arc"
	case ElementSolar:
		return "solar"
	case ElementVoid:
		return "void"
	case ElementStasis:
		return "stasis"
	case ElementStrand:
		return "strand"
	default:
		return "any"
	}
}

// Tier is the rarity tier of an item.
type Tier int

const (
	TierUnknown Tier = iota
	TierCommon
	TierUncommon
	TierRare
	TierLegendary
	TierExotic
)

func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierUncommon:
		return "uncommon"
	case TierRare:
		return "rare"
	case TierLegendary:
		return "legendary"
	case TierExotic:
		return "exotic"
	default:
		return "unknown"
	}
}

// RawItemRecord is one unvalidated catalog entry as delivered by the catalog
// source. It mirrors the upstream definition shape and never leaks past the
// indexing boundary.
type RawItemRecord struct {
	Hash            ItemHash
	Name            string
	Description     string
	TypeCode        int    // upstream item type code
	TypeDisplayName string // e.g. "Hand Cannon", "Chest Armor"
	BucketHash      uint32 // upstream inventory bucket
	ClassCode       int    // upstream class restriction code
	DamageCode      int    // upstream damage type code
	TierCode        int    // upstream rarity tier code
	Redacted        bool
	Stats           map[uint32]int // stat hash -> value
}

// CatalogItem is a validated, classified catalog entry. Instances are built
// once per catalog version by the indexer and never mutated afterwards.
type CatalogItem struct {
	Hash            ItemHash
	Name            string
	Description     string
	Category        Category
	Slot            Slot
	Class           GuardianClass
	Element         Element
	Tier            Tier
	TypeDisplayName string
	Tags            []string // lower-cased, sorted, deduplicated
	BuildRelevant   bool
	Stats           map[uint32]int
}

// HasTag reports whether the item carries the given tag.
func (i *CatalogItem) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ParsedQuery is the structured intent resolved from free query text.
// Unresolved entities carry explicit defaults rather than zero values with
// ambiguous meaning: ClassAny, ElementNone, "general", "balanced", empty
// lists. Downstream matching never special-cases "missing".
type ParsedQuery struct {
	Text        string
	Tokens      []string
	Class       GuardianClass
	Element     Element
	Activity    string
	Playstyle   string
	FocusStats  []string
	WeaponTypes []string
	ExoticNames []string
	StatTargets map[string]int
	Confidence  float64 // [0,1]
}

// BuildTemplate holds the static guide suggestions of an archetype. Every
// field is the fallback for a guide slot no matched item could fill.
type BuildTemplate struct {
	Super        string
	ClassAbility string
	Movement     string
	Melee        string
	Aspects      []string
	Fragments    []string
	Kinetic      string
	Energy       string
	Power        string
	Mods         []string
	StatPriority []string
	Rotation     []string
	Tips         []string
}

// BuildArchetype is one static build pattern: trigger keywords decide whether
// it is considered for a query, synergy tags decide which items support it.
type BuildArchetype struct {
	ID          string
	Name        string
	Description string
	Focus       string
	Class       GuardianClass // ClassAny when the pattern is class-agnostic
	Element     Element
	Keywords    []string // trigger keywords and phrases
	SynergyTags []string
	ExoticNames []string // exotics matched by name
	ModNames    []string // mods matched by name
	MinItems    int
	Template    BuildTemplate
}

// MatchedItems partitions the catalog items matched for an archetype by the
// component category they fill in a build.
type MatchedItems struct {
	ExoticArmor      []CatalogItem
	ExoticWeapons    []CatalogItem
	LegendaryWeapons []CatalogItem
	Mods             []CatalogItem
	Aspects          []CatalogItem
	Fragments        []CatalogItem
	Abilities        []CatalogItem
}

// Total returns the number of matched items across all categories.
func (m *MatchedItems) Total() int {
	return len(m.ExoticArmor) + len(m.ExoticWeapons) + len(m.LegendaryWeapons) +
		len(m.Mods) + len(m.Aspects) + len(m.Fragments) + len(m.Abilities)
}

// Categories returns the number of non-empty component categories.
func (m *MatchedItems) Categories() int {
	n := 0
	for _, items := range [][]CatalogItem{
		m.ExoticArmor, m.ExoticWeapons, m.LegendaryWeapons,
		m.Mods, m.Aspects, m.Fragments, m.Abilities,
	} {
		if len(items) > 0 {
			n++
		}
	}
	return n
}

// Exotics returns the number of matched exotic items.
func (m *MatchedItems) Exotics() int {
	return len(m.ExoticArmor) + len(m.ExoticWeapons)
}

// CandidateMatch is one archetype that survived the threshold gate, with the
// items that matched it and the computed synergy score.
type CandidateMatch struct {
	Archetype BuildArchetype
	Items     MatchedItems
	Score     int // [0,100]
}

// ItemRef is a plain reference to a catalog item, safe to serialize without
// dragging index internals along.
type ItemRef struct {
	Hash ItemHash
	Name string
}

// BuildComponents lists the matched items of a build by component category.
type BuildComponents struct {
	ExoticArmor      []ItemRef
	ExoticWeapons    []ItemRef
	LegendaryWeapons []ItemRef
	Mods             []ItemRef
	Aspects          []ItemRef
	Fragments        []ItemRef
	Abilities        []ItemRef
}

// WeaponSlots holds one suggestion per weapon slot.
type WeaponSlots struct {
	Kinetic string
	Energy  string
	Power   string
}

// ArmorSlots holds one suggestion per armor slot.
type ArmorSlots struct {
	Helmet    string
	Arms      string
	Chest     string
	Legs      string
	ClassItem string
}

// ModSlots partitions mod suggestions by priority.
type ModSlots struct {
	Essential   []string
	Recommended []string
	Optional    []string
}

// BuildGuide is the fully populated recommendation for one build. Every slot
// is a non-empty string or non-empty list: a real matched item name where one
// exists, otherwise the archetype template suggestion.
type BuildGuide struct {
	Super        string
	ClassAbility string
	Movement     string
	Melee        string
	Aspects      []string
	Fragments    []string
	Weapons      WeaponSlots
	Armor        ArmorSlots
	Mods         ModSlots
	StatPriority []string
	Rotation     []string
	Tips         []string
}

// Playstyle describes how a build plays.
type Playstyle struct {
	Strengths      []string
	Weaknesses     []string
	BestActivities []string
}

// CandidateBuild is one complete, ranked build suggestion. It is created
// fresh per query and holds no references back into the catalog index.
type CandidateBuild struct {
	Name            string
	Description     string
	Score           int // [0,100]
	Focus           string
	Class           GuardianClass
	Element         Element
	Components      BuildComponents
	Guide           BuildGuide
	Playstyle       Playstyle
	SourceItemCount int
}

// SavedBuild is a CandidateBuild a caller chose to persist, with the query
// that produced it.
type SavedBuild struct {
	Id         ID
	Query      string
	Build      CandidateBuild
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// VersionKey derives the cache key for a catalog snapshot from its version
// string and item count.
func VersionKey(version string, itemCount int) ID {
	return IDFromContent(version + ":" + strconv.Itoa(itemCount))
}
