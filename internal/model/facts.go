package model

import (
	"slices"
	"strconv"
)

// CompanySize buckets the business by headcount band.
type CompanySize string

const (
	CompanySizeSmall  CompanySize = "small"  // up to 10 employees
	CompanySizeMedium CompanySize = "medium" // 10-50 employees
	CompanySizeLarge  CompanySize = "large"  // more than 50 employees
)

// Sector is the industry the business operates in.
type Sector string

const (
	SectorCraft      Sector = "craft"
	SectorProduction Sector = "production"
	SectorTrade      Sector = "trade"
	SectorServices   Sector = "services"
	SectorIT         Sector = "it"
	SectorOther      Sector = "other"
)

// Revenue is the annual revenue band in euros.
type Revenue string

const (
	RevenueUnder500K Revenue = "<500k"
	Revenue500KTo2M  Revenue = "500k-2m"
	Revenue2MTo10M   Revenue = "2m-10m"
	RevenueOver10M   Revenue = ">10m"
)

// YesNo is a binary answer.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// Identified records whether the owner has a successor in view.
type Identified string

const (
	IdentifiedYes     Identified = "yes"
	IdentifiedNo      Identified = "no"
	IdentifiedUnclear Identified = "unclear"
)

// SuccessorType is the kind of successor the owner has in view.
// The zero value means no successor type was given.
type SuccessorType string

const (
	SuccessorNone       SuccessorType = ""
	SuccessorFamily     SuccessorType = "family"
	SuccessorManagement SuccessorType = "management"
	SuccessorExternal   SuccessorType = "external"
)

// Timeframe is the planned time until handover.
type Timeframe string

const (
	TimeframeUnder2Y Timeframe = "<2y"
	Timeframe2To5Y   Timeframe = "2-5y"
	TimeframeOver5Y  Timeframe = ">5y"
)

// Level is a four-step intensity scale shared by emotional attachment and
// financial expectations.
type Level string

const (
	LevelVeryHigh Level = "very_high"
	LevelHigh     Level = "high"
	LevelMedium   Level = "medium"
	LevelLow      Level = "low"
)

// All known values per enum, in presentation order.
var (
	CompanySizes   = []CompanySize{CompanySizeSmall, CompanySizeMedium, CompanySizeLarge}
	Sectors        = []Sector{SectorCraft, SectorProduction, SectorTrade, SectorServices, SectorIT, SectorOther}
	Revenues       = []Revenue{RevenueUnder500K, Revenue500KTo2M, Revenue2MTo10M, RevenueOver10M}
	YesNos         = []YesNo{Yes, No}
	Identifieds    = []Identified{IdentifiedYes, IdentifiedNo, IdentifiedUnclear}
	SuccessorTypes = []SuccessorType{SuccessorFamily, SuccessorManagement, SuccessorExternal}
	Timeframes     = []Timeframe{TimeframeUnder2Y, Timeframe2To5Y, TimeframeOver5Y}
	Levels         = []Level{LevelVeryHigh, LevelHigh, LevelMedium, LevelLow}
)

// Valid reports whether s is a known company size.
func (s CompanySize) Valid() bool { return slices.Contains(CompanySizes, s) }

// Valid reports whether s is a known sector.
func (s Sector) Valid() bool { return slices.Contains(Sectors, s) }

// Valid reports whether r is a known revenue band.
func (r Revenue) Valid() bool { return slices.Contains(Revenues, r) }

// Valid reports whether y is yes or no.
func (y YesNo) Valid() bool { return slices.Contains(YesNos, y) }

// Valid reports whether i is a known identification state.
func (i Identified) Valid() bool { return slices.Contains(Identifieds, i) }

// Valid reports whether t is a known successor type. The empty value is not
// valid; callers decide whether a missing type is acceptable.
func (t SuccessorType) Valid() bool { return slices.Contains(SuccessorTypes, t) }

// Valid reports whether t is a known timeframe bucket.
func (t Timeframe) Valid() bool { return slices.Contains(Timeframes, t) }

// Valid reports whether l is a known level.
func (l Level) Valid() bool { return slices.Contains(Levels, l) }

// IsHigh reports whether the level is high or very high.
func (l Level) IsHigh() bool { return l == LevelVeryHigh || l == LevelHigh }

// Facts is the canonical fact record describing a business and its owner.
// It is fully populated and validated before the advisory engine sees it.
type Facts struct {
	CompanySize           CompanySize   `json:"companySize" yaml:"companySize"`
	Sector                Sector        `json:"sector" yaml:"sector"`
	AnnualRevenue         Revenue       `json:"annualRevenue" yaml:"annualRevenue"`
	EmployeeCount         int           `json:"employeeCount" yaml:"employeeCount"`
	IsFamilyBusiness      YesNo         `json:"isFamilyBusiness" yaml:"isFamilyBusiness"`
	SuccessorIdentified   Identified    `json:"successorIdentified" yaml:"successorIdentified"`
	SuccessorType         SuccessorType `json:"successorType,omitempty" yaml:"successorType,omitempty"`
	HandoverTimeframe     Timeframe     `json:"handoverTimeframe" yaml:"handoverTimeframe"`
	OwnerAge              int           `json:"ownerAge" yaml:"ownerAge"`
	EmotionalAttachment   Level         `json:"emotionalAttachment" yaml:"emotionalAttachment"`
	FinancialExpectations Level         `json:"financialExpectations" yaml:"financialExpectations"`
}

// EffectiveSuccessorType returns the successor type that counts for
// classification. A type given without an identified successor is ignored.
func (f Facts) EffectiveSuccessorType() SuccessorType {
	if f.SuccessorIdentified != IdentifiedYes {
		return SuccessorNone
	}
	return f.SuccessorType
}

// Value returns the answer stored for a field name as it would be entered:
// the code for option fields, the decimal number for counts. Unknown fields
// and absent successor types yield "".
func (f Facts) Value(field string) string {
	switch field {
	case FieldCompanySize:
		return string(f.CompanySize)
	case FieldSector:
		return string(f.Sector)
	case FieldAnnualRevenue:
		return string(f.AnnualRevenue)
	case FieldEmployeeCount:
		return strconv.Itoa(f.EmployeeCount)
	case FieldIsFamilyBusiness:
		return string(f.IsFamilyBusiness)
	case FieldSuccessorIdentified:
		return string(f.SuccessorIdentified)
	case FieldSuccessorType:
		return string(f.EffectiveSuccessorType())
	case FieldHandoverTimeframe:
		return string(f.HandoverTimeframe)
	case FieldOwnerAge:
		return strconv.Itoa(f.OwnerAge)
	case FieldEmotionalAttachment:
		return string(f.EmotionalAttachment)
	case FieldFinancialExpectations:
		return string(f.FinancialExpectations)
	default:
		return ""
	}
}
