package adaptor

import (
	"context"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
)

type fakeAttendeeService struct {
	create  func(req *request.AttendeeRequest) (*response.AttendeeResponse, error)
	list    func() ([]response.AttendeeResponse, error)
	get     func(id string) (*response.AttendeeResponse, error)
	destroy func(id string) error
}

func (f *fakeAttendeeService) CreateAttendee(_ context.Context, req *request.AttendeeRequest) (*response.AttendeeResponse, error) {
	return f.create(req)
}

func (f *fakeAttendeeService) GetAttendees(context.Context) ([]response.AttendeeResponse, error) {
	return f.list()
}

func (f *fakeAttendeeService) GetAttendeeByID(_ context.Context, id string) (*response.AttendeeResponse, error) {
	return f.get(id)
}

func (f *fakeAttendeeService) DeleteAttendee(_ context.Context, id string) error {
	return f.destroy(id)
}

type fakePlayService struct {
	create  func(req *request.PlayRequest) (*response.PlayResponse, error)
	list    func() ([]response.PlayResponse, error)
	get     func(id string) (*response.PlayDetailResponse, error)
	update  func(id string, req *request.PlayRequest) (*response.PlayDetailResponse, error)
	patch   func(id string, req *request.PlayUpdateRequest) (*response.PlayDetailResponse, error)
	destroy func(id string) error
}

func (f *fakePlayService) CreatePlay(_ context.Context, req *request.PlayRequest) (*response.PlayResponse, error) {
	return f.create(req)
}

func (f *fakePlayService) GetPlays(context.Context) ([]response.PlayResponse, error) {
	return f.list()
}

func (f *fakePlayService) GetPlayByID(_ context.Context, id string) (*response.PlayDetailResponse, error) {
	return f.get(id)
}

func (f *fakePlayService) UpdatePlay(_ context.Context, id string, req *request.PlayRequest) (*response.PlayDetailResponse, error) {
	return f.update(id, req)
}

func (f *fakePlayService) PatchPlay(_ context.Context, id string, req *request.PlayUpdateRequest) (*response.PlayDetailResponse, error) {
	return f.patch(id, req)
}

func (f *fakePlayService) DeletePlay(_ context.Context, id string) error {
	return f.destroy(id)
}

type fakeReservationService struct {
	create  func(req *request.ReservationRequest) (*response.ReservationResponse, error)
	list    func() ([]response.ReservationResponse, error)
	get     func(id string) (*response.ReservationResponse, error)
	destroy func(id string) error
}

func (f *fakeReservationService) CreateReservation(_ context.Context, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	return f.create(req)
}

func (f *fakeReservationService) GetReservations(context.Context) ([]response.ReservationResponse, error) {
	return f.list()
}

func (f *fakeReservationService) GetReservationByID(_ context.Context, id string) (*response.ReservationResponse, error) {
	return f.get(id)
}

func (f *fakeReservationService) DeleteReservation(_ context.Context, id string) error {
	return f.destroy(id)
}
