package consts

const (
	GeekBaseURL = "https://geekai.co/api"
	TuziBaseURL = "https://api.tu-zi.com"
	V3BaseUrl   = "https://api.gpt.ge"
)

type ModelSupplier string

const (
	Geek ModelSupplier = "geek"
	Tuzi ModelSupplier = "tuzi"
	V3   ModelSupplier = "v3"
)

func (m ModelSupplier) String() string {
	return string(m)
}

func (m ModelSupplier) BaseURL() string {
	switch m {
	case Geek:
		return GeekBaseURL
	case Tuzi:
		return TuziBaseURL
	case V3:
		return V3BaseUrl
	default:
		return ""
	}
}

type Model string

const (
	GeminiFlashImage Model = "gemini-2.5-flash-image"
	GPTImage1        Model = "gpt-image-1"
)

func (m Model) String() string {
	return string(m)
}

// Medium is a marketing surface the source design is composited onto.
type Medium string

const (
	MediumMug        Medium = "mug"
	MediumTShirt     Medium = "tshirt"
	MediumBillboard  Medium = "billboard"
	MediumPoster     Medium = "poster"
	MediumToteBag    Medium = "tote"
	MediumTruck      Medium = "truck"
	MediumStorefront Medium = "storefront"
	MediumPhoneCase  Medium = "phonecase"
)

func (m Medium) String() string {
	return string(m)
}

func (m Medium) Valid() bool {
	_, ok := sceneTemplates[m]
	return ok
}

// SceneTemplate is the fixed descriptive prompt sent to the model for this
// medium. The wording is part of the supplier contract, do not reword.
func (m Medium) SceneTemplate() string {
	return sceneTemplates[m]
}

var sceneTemplates = map[Medium]string{
	MediumMug:        "Place the provided logo on a ceramic coffee mug sitting on a wooden desk, soft morning light, photorealistic product shot",
	MediumTShirt:     "Print the provided logo on the chest of a plain cotton t-shirt worn by a model, studio lighting, photorealistic apparel mockup",
	MediumBillboard:  "Display the provided logo on a large roadside billboard against a clear sky, viewed from street level, photorealistic outdoor advertising shot",
	MediumPoster:     "Show the provided logo on a framed poster hanging on a gallery wall, even gallery lighting, photorealistic interior shot",
	MediumToteBag:    "Print the provided logo on a canvas tote bag held over a shoulder, natural daylight, photorealistic lifestyle shot",
	MediumTruck:      "Wrap the provided logo across the side panel of a delivery truck parked on a city street, photorealistic vehicle branding shot",
	MediumStorefront: "Mount the provided logo as a sign above a modern storefront at dusk, warm window light, photorealistic architectural shot",
	MediumPhoneCase:  "Print the provided logo on a matte phone case lying on a marble surface, top-down product photography, photorealistic",
}

func Mediums() []Medium {
	return []Medium{
		MediumMug, MediumTShirt, MediumBillboard, MediumPoster,
		MediumToteBag, MediumTruck, MediumStorefront, MediumPhoneCase,
	}
}

type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectLandscape AspectRatio = "16:9"
	AspectPortrait  AspectRatio = "9:16"
	AspectClassic   AspectRatio = "4:3"
	AspectTall      AspectRatio = "3:4"
)

func (a AspectRatio) String() string {
	return string(a)
}

func (a AspectRatio) Valid() bool {
	switch a {
	case AspectSquare, AspectLandscape, AspectPortrait, AspectClassic, AspectTall:
		return true
	}
	return false
}

// FailureKind classifies a generation failure for display. It never drives
// retry behavior.
type FailureKind string

const (
	FailureSafety        FailureKind = "safety"
	FailureRateLimit     FailureKind = "rate"
	FailureAuth          FailureKind = "auth"
	FailureServer        FailureKind = "server"
	FailureBadRequest    FailureKind = "bad_request"
	FailureEmptyResponse FailureKind = "empty_response"
	FailureUnknown       FailureKind = "unknown"
)

func (f FailureKind) String() string {
	return string(f)
}

// Phase of one medium inside a batch: preparing -> generating -> success|error.
type Phase string

const (
	PhasePreparing  Phase = "preparing"
	PhaseGenerating Phase = "generating"
	PhaseFinalizing Phase = "finalizing"
	PhaseSuccess    Phase = "success"
	PhaseError      Phase = "error"
)

func (p Phase) String() string {
	return string(p)
}

func (p Phase) Terminal() bool {
	return p == PhaseSuccess || p == PhaseError
}
