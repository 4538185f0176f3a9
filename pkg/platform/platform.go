package platform

//go:generate go tool github.com/golang/mock/mockgen -source=platform.go -destination ../mocks/platform.go -package mocks -self_package github.com/quasar/android-useragent/pkg/platform/

// Facts describes the device a user agent is composed for. Values are
// supplied by the host; nothing in this package probes a device.
type Facts interface {
	GetRelease() string
	SetRelease(string)

	GetSDK() int
	SetSDK(int)

	GetModel() string
	SetModel(string)

	GetBuildID() string
	SetBuildID(string)

	IsLargeFormFactor() bool
	SetLargeFormFactor(bool)
}

type Opt func(Facts)

type defaultFacts struct {
	release         string
	sdk             int
	model           string
	buildID         string
	largeFormFactor bool
}

var _ Facts = (*defaultFacts)(nil)

func (f *defaultFacts) GetRelease() string {
	return f.release
}

func (f *defaultFacts) SetRelease(r string) {
	f.release = r
}

func (f *defaultFacts) GetSDK() int {
	return f.sdk
}

func (f *defaultFacts) SetSDK(sdk int) {
	f.sdk = sdk
}

func (f *defaultFacts) GetModel() string {
	return f.model
}

func (f *defaultFacts) SetModel(m string) {
	f.model = m
}

func (f *defaultFacts) GetBuildID() string {
	return f.buildID
}

func (f *defaultFacts) SetBuildID(id string) {
	f.buildID = id
}

func (f *defaultFacts) IsLargeFormFactor() bool {
	return f.largeFormFactor
}

func (f *defaultFacts) SetLargeFormFactor(large bool) {
	f.largeFormFactor = large
}

func New(opts ...Opt) Facts {
	f := &defaultFacts{}

	for _, fn := range opts {
		fn(f)
	}

	return f
}

func WithRelease(r string) Opt {
	return func(f Facts) {
		f.SetRelease(r)
	}
}

func WithSDK(sdk int) Opt {
	return func(f Facts) {
		f.SetSDK(sdk)
	}
}

func WithModel(m string) Opt {
	return func(f Facts) {
		f.SetModel(m)
	}
}

func WithBuildID(id string) Opt {
	return func(f Facts) {
		f.SetBuildID(id)
	}
}

func WithLargeFormFactor(large bool) Opt {
	return func(f Facts) {
		f.SetLargeFormFactor(large)
	}
}
