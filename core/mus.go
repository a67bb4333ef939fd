package core

// Hand-maintained MUS serializers for the persisted types. The storage layer
// uses these through the Marshal*/Unmarshal* helpers in the storage package.
// Field order is part of the stored format: append new fields, never reorder.

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	// IDMUS serializes ID values.
	IDMUS = idMUS{}
	// ItemRefMUS serializes ItemRef values.
	ItemRefMUS = itemRefMUS{}
	// CandidateBuildMUS serializes CandidateBuild values.
	CandidateBuildMUS = candidateBuildMUS{}
	// SavedBuildMUS serializes SavedBuild values.
	SavedBuildMUS = savedBuildMUS{}

	strSliceMUS = ord.NewSliceSer[string](ord.String)
	refSliceMUS = ord.NewSliceSer[ItemRef](ItemRefMUS)
	timeMUS     = timeMicroMUS{}

	_ mus.Serializer[ID]             = IDMUS
	_ mus.Serializer[ItemRef]        = ItemRefMUS
	_ mus.Serializer[CandidateBuild] = CandidateBuildMUS
	_ mus.Serializer[SavedBuild]     = SavedBuildMUS
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// timeMicroMUS stores timestamps as Unix microseconds in UTC.
type timeMicroMUS struct{}

func (timeMicroMUS) Marshal(v time.Time, bs []byte) int {
	return varint.Int64.Marshal(v.UnixMicro(), bs)
}

func (timeMicroMUS) Unmarshal(bs []byte) (time.Time, int, error) {
	micro, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micro).UTC(), n, nil
}

func (timeMicroMUS) Size(v time.Time) int {
	return varint.Int64.Size(v.UnixMicro())
}

func (timeMicroMUS) Skip(bs []byte) (int, error) {
	return varint.Int64.Skip(bs)
}

type itemRefMUS struct{}

func (itemRefMUS) Marshal(v ItemRef, bs []byte) (n int) {
	n = varint.Uint32.Marshal(uint32(v.Hash), bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	return n
}

func (itemRefMUS) Unmarshal(bs []byte) (v ItemRef, n int, err error) {
	hash, n, err := varint.Uint32.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Hash = ItemHash(hash)
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (itemRefMUS) Size(v ItemRef) int {
	return varint.Uint32.Size(uint32(v.Hash)) + ord.String.Size(v.Name)
}

func (s itemRefMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type componentsMUS struct{}

func (componentsMUS) fields(v *BuildComponents) []*[]ItemRef {
	return []*[]ItemRef{
		&v.ExoticArmor, &v.ExoticWeapons, &v.LegendaryWeapons,
		&v.Mods, &v.Aspects, &v.Fragments, &v.Abilities,
	}
}

func (s componentsMUS) Marshal(v BuildComponents, bs []byte) (n int) {
	for _, field := range s.fields(&v) {
		n += refSliceMUS.Marshal(*field, bs[n:])
	}
	return n
}

func (s componentsMUS) Unmarshal(bs []byte) (v BuildComponents, n int, err error) {
	for _, field := range s.fields(&v) {
		var n1 int
		*field, n1, err = refSliceMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func (s componentsMUS) Size(v BuildComponents) (size int) {
	for _, field := range s.fields(&v) {
		size += refSliceMUS.Size(*field)
	}
	return size
}

func (s componentsMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type guideMUS struct{}

func (guideMUS) strFields(v *BuildGuide) []*string {
	return []*string{
		&v.Super, &v.ClassAbility, &v.Movement, &v.Melee,
		&v.Weapons.Kinetic, &v.Weapons.Energy, &v.Weapons.Power,
		&v.Armor.Helmet, &v.Armor.Arms, &v.Armor.Chest, &v.Armor.Legs, &v.Armor.ClassItem,
	}
}

func (guideMUS) listFields(v *BuildGuide) []*[]string {
	return []*[]string{
		&v.Aspects, &v.Fragments,
		&v.Mods.Essential, &v.Mods.Recommended, &v.Mods.Optional,
		&v.StatPriority, &v.Rotation, &v.Tips,
	}
}

func (s guideMUS) Marshal(v BuildGuide, bs []byte) (n int) {
	for _, field := range s.strFields(&v) {
		n += ord.String.Marshal(*field, bs[n:])
	}
	for _, field := range s.listFields(&v) {
		n += strSliceMUS.Marshal(*field, bs[n:])
	}
	return n
}

func (s guideMUS) Unmarshal(bs []byte) (v BuildGuide, n int, err error) {
	var n1 int
	for _, field := range s.strFields(&v) {
		*field, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	for _, field := range s.listFields(&v) {
		*field, n1, err = strSliceMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func (s guideMUS) Size(v BuildGuide) (size int) {
	for _, field := range s.strFields(&v) {
		size += ord.String.Size(*field)
	}
	for _, field := range s.listFields(&v) {
		size += strSliceMUS.Size(*field)
	}
	return size
}

func (s guideMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type playstyleMUS struct{}

func (s playstyleMUS) Marshal(v Playstyle, bs []byte) (n int) {
	n = strSliceMUS.Marshal(v.Strengths, bs)
	n += strSliceMUS.Marshal(v.Weaknesses, bs[n:])
	n += strSliceMUS.Marshal(v.BestActivities, bs[n:])
	return n
}

func (s playstyleMUS) Unmarshal(bs []byte) (v Playstyle, n int, err error) {
	var n1 int
	if v.Strengths, n, err = strSliceMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.Weaknesses, n1, err = strSliceMUS.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	v.BestActivities, n1, err = strSliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s playstyleMUS) Size(v Playstyle) int {
	return strSliceMUS.Size(v.Strengths) + strSliceMUS.Size(v.Weaknesses) +
		strSliceMUS.Size(v.BestActivities)
}

func (s playstyleMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type candidateBuildMUS struct{}

func (candidateBuildMUS) Marshal(v CandidateBuild, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Description, bs[n:])
	n += varint.Int.Marshal(v.Score, bs[n:])
	n += ord.String.Marshal(v.Focus, bs[n:])
	n += varint.Int.Marshal(int(v.Class), bs[n:])
	n += varint.Int.Marshal(int(v.Element), bs[n:])
	n += componentsMUS{}.Marshal(v.Components, bs[n:])
	n += guideMUS{}.Marshal(v.Guide, bs[n:])
	n += playstyleMUS{}.Marshal(v.Playstyle, bs[n:])
	n += varint.Int.Marshal(v.SourceItemCount, bs[n:])
	return n
}

func (candidateBuildMUS) Unmarshal(bs []byte) (v CandidateBuild, n int, err error) {
	var n1 int
	if v.Name, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	if v.Score, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	if v.Focus, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	var code int
	if code, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	v.Class = GuardianClass(code)
	n += n1
	if code, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	v.Element = Element(code)
	n += n1
	if v.Components, n1, err = (componentsMUS{}).Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	if v.Guide, n1, err = (guideMUS{}).Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	if v.Playstyle, n1, err = (playstyleMUS{}).Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	v.SourceItemCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (candidateBuildMUS) Size(v CandidateBuild) (size int) {
	size = ord.String.Size(v.Name) + ord.String.Size(v.Description)
	size += varint.Int.Size(v.Score) + ord.String.Size(v.Focus)
	size += varint.Int.Size(int(v.Class)) + varint.Int.Size(int(v.Element))
	size += componentsMUS{}.Size(v.Components)
	size += guideMUS{}.Size(v.Guide)
	size += playstyleMUS{}.Size(v.Playstyle)
	size += varint.Int.Size(v.SourceItemCount)
	return size
}

func (s candidateBuildMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type savedBuildMUS struct{}

func (savedBuildMUS) Marshal(v SavedBuild, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Query, bs[n:])
	n += CandidateBuildMUS.Marshal(v.Build, bs[n:])
	n += timeMUS.Marshal(v.InsertedAt, bs[n:])
	n += timeMUS.Marshal(v.UpdatedAt, bs[n:])
	return n
}

func (savedBuildMUS) Unmarshal(bs []byte) (v SavedBuild, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.Query, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	if v.Build, n1, err = CandidateBuildMUS.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	if v.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		n += n1
		return
	}
	n += n1
	v.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (savedBuildMUS) Size(v SavedBuild) int {
	return IDMUS.Size(v.Id) + ord.String.Size(v.Query) +
		CandidateBuildMUS.Size(v.Build) +
		timeMUS.Size(v.InsertedAt) + timeMUS.Size(v.UpdatedAt)
}

func (s savedBuildMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}
