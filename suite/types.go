package suite

// Parameter type tags. These are the exact strings the OpenFX API uses to
// discriminate parameter kinds; dispatch matches them byte-for-byte, no
// case folding.
const (
	ParamTypeBoolean    = "OfxParamTypeBoolean"
	ParamTypeChoice     = "OfxParamTypeChoice"
	ParamTypeCustom     = "OfxParamTypeCustom"
	ParamTypeDouble     = "OfxParamTypeDouble"
	ParamTypeDouble2D   = "OfxParamTypeDouble2D"
	ParamTypeDouble3D   = "OfxParamTypeDouble3D"
	ParamTypeGroup      = "OfxParamTypeGroup"
	ParamTypeInteger    = "OfxParamTypeInteger"
	ParamTypeInteger2D  = "OfxParamTypeInteger2D"
	ParamTypeInteger3D  = "OfxParamTypeInteger3D"
	ParamTypePage       = "OfxParamTypePage"
	ParamTypeParametric = "OfxParamTypeParametric"
	ParamTypePushButton = "OfxParamTypePushButton"
	ParamTypeRGB        = "OfxParamTypeRGB"
	ParamTypeRGBA       = "OfxParamTypeRGBA"
	ParamTypeString     = "OfxParamTypeString"
)

// Message type tags accepted by the message suite
const (
	MessageFatal    = "OfxMessageFatal"
	MessageError    = "OfxMessageError"
	MessageWarning  = "OfxMessageWarning"
	MessageMessage  = "OfxMessageMessage"
	MessageLog      = "OfxMessageLog"
	MessageQuestion = "OfxMessageQuestion"
)

// MaxComponents is the largest component count any supported parameter type
// carries (RGBA). Both get-forwarders are compiled against this bound.
const MaxComponents = 4

// ComponentCount returns the number of value components a parameter type
// carries, or -1 for an unrecognized tag. Structural types (group, page,
// push button, parametric) carry no value at all.
func ComponentCount(paramType string) int {
	switch paramType {
	case ParamTypeBoolean, ParamTypeChoice, ParamTypeCustom, ParamTypeDouble,
		ParamTypeInteger, ParamTypeString:
		return 1
	case ParamTypeDouble2D, ParamTypeInteger2D:
		return 2
	case ParamTypeDouble3D, ParamTypeInteger3D, ParamTypeRGB:
		return 3
	case ParamTypeRGBA:
		return 4
	case ParamTypeGroup, ParamTypePage, ParamTypeParametric, ParamTypePushButton:
		return 0
	default:
		return -1
	}
}
