package domain

import (
	interfaces "tricalc/internal/domain/interfaces"
	types "tricalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Mode               = types.Mode
	Operator           = types.Operator
	ScientificFunction = types.ScientificFunction
	ConversionCategory = types.ConversionCategory
	ConverterSelection = types.ConverterSelection
	SessionState       = types.SessionState
	DisplaySnapshot    = types.DisplaySnapshot
	RateTable          = types.RateTable
	LoadStatus         = types.LoadStatus
	LoadResult         = types.LoadResult
	Settings           = types.Settings
	Effect             = types.Effect
	Bracket            = types.Bracket

	Action         = types.Action
	Digit          = types.Digit
	DecimalPoint   = types.DecimalPoint
	OperatorAction = types.OperatorAction
	Evaluate       = types.Evaluate
	Clear          = types.Clear
	Backspace      = types.Backspace
	SciFunction    = types.SciFunction
	Percent        = types.Percent
	ModeChange     = types.ModeChange
	BracketToken   = types.BracketToken
	SelectCategory = types.SelectCategory
	SelectUnits    = types.SelectUnits
	SwapUnits      = types.SwapUnits
	Refresh        = types.Refresh
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RateSource    = interfaces.RateSource
	CurrencyStore = interfaces.CurrencyStore
	SettingsStore = interfaces.SettingsStore
)

const (
	ModeStandard   = types.ModeStandard
	ModeScientific = types.ModeScientific
	ModeConverter  = types.ModeConverter

	OpNone    = types.OpNone
	OpAdd     = types.OpAdd
	OpSub     = types.OpSub
	OpMul     = types.OpMul
	OpDiv     = types.OpDiv
	OpPow     = types.OpPow
	OpNthRoot = types.OpNthRoot

	FnSin   = types.FnSin
	FnCos   = types.FnCos
	FnTan   = types.FnTan
	FnLog10 = types.FnLog10
	FnLn    = types.FnLn
	FnSqrt  = types.FnSqrt
	FnPi    = types.FnPi
	FnE     = types.FnE

	CategoryLength   = types.CategoryLength
	CategoryWeight   = types.CategoryWeight
	CategoryCurrency = types.CategoryCurrency

	LoadIdle    = types.LoadIdle
	LoadPending = types.LoadPending
	LoadLoaded  = types.LoadLoaded
	LoadFailed  = types.LoadFailed

	EffectNone      = types.EffectNone
	EffectLoadRates = types.EffectLoadRates

	BracketOpen   = types.BracketOpen
	BracketClose  = types.BracketClose
	BracketToggle = types.BracketToggle
)

// Constructors and parsers re-exported from the types subpackage.
var (
	NewRateTable  = types.NewRateTable
	ParseMode     = types.ParseMode
	ParseCategory = types.ParseCategory
	Categories    = types.Categories
)
