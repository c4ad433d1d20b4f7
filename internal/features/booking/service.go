package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-admin/internal/common/apperror"
	"go-admin/internal/features/program"
	featureservice "go-admin/internal/features/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingView, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]BookingView, int64, error)
	GetBookingByID(ctx context.Context, id string) (*BookingView, error)
	UpdateBooking(ctx context.Context, id string, input UpdateBookingInput) (*BookingView, error)
	DeleteBooking(ctx context.Context, id string) error
}

type BookingServiceImpl struct {
	BookingRepo BookingRepository
	ServiceRepo featureservice.ServiceRepository
	ProgramRepo program.ProgramRepository
}

func NewBookingService(
	bookingRepo BookingRepository,
	serviceRepo featureservice.ServiceRepository,
	programRepo program.ProgramRepository,
) BookingService {
	return &BookingServiceImpl{
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
		ProgramRepo: programRepo,
	}
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingView, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	message := strings.TrimSpace(input.Message)
	status := strings.TrimSpace(input.Status)

	if name == "" || email == "" || phone == "" || input.ServiceType == "" ||
		input.ProgramType == "" || message == "" || status == "" {
		return nil, apperror.Validation("All fields are required")
	}

	// Reference checks run before the duplicate check, matching the
	// order clients observe.
	serviceID, err := s.resolveService(ctx, input.ServiceType)
	if err != nil {
		return nil, err
	}
	programID, err := s.resolveProgram(ctx, input.ProgramType)
	if err != nil {
		return nil, err
	}

	if _, err := s.BookingRepo.FindByEmailOrPhone(ctx, email, phone); err == nil {
		return nil, apperror.Conflict("Booking with this email or phone already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	booking := &Booking{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		ServiceType: serviceID,
		ProgramType: programID,
		Message:     message,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return s.resolveView(ctx, booking)
}

func (s *BookingServiceImpl) ListBookings(ctx context.Context, filter BookingFilter) ([]BookingView, int64, error) {
	query, err := buildBookingFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	bookings, total, err := s.BookingRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		view, err := s.resolveView(ctx, &bookings[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}

	return views, total, nil
}

func (s *BookingServiceImpl) GetBookingByID(ctx context.Context, id string) (*BookingView, error) {
	booking, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveView(ctx, booking)
}

func (s *BookingServiceImpl) UpdateBooking(ctx context.Context, id string, input UpdateBookingInput) (*BookingView, error) {
	existing, err := s.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	if input.ServiceType != nil && strings.TrimSpace(*input.ServiceType) != "" {
		serviceID, err := s.resolveService(ctx, *input.ServiceType)
		if err != nil {
			return nil, err
		}
		set["serviceType"] = serviceID
	}

	if input.ProgramType != nil && strings.TrimSpace(*input.ProgramType) != "" {
		programID, err := s.resolveProgram(ctx, *input.ProgramType)
		if err != nil {
			return nil, err
		}
		set["programType"] = programID
	}

	if input.Email != nil {
		if email := strings.TrimSpace(*input.Email); email != "" && email != existing.Email {
			if _, err := s.BookingRepo.FindByEmail(ctx, email); err == nil {
				return nil, apperror.Conflict("Email already in use by another booking")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			set["email"] = email
		}
	}

	if input.Phone != nil {
		if phone := strings.TrimSpace(*input.Phone); phone != "" && phone != existing.Phone {
			if _, err := s.BookingRepo.FindByPhone(ctx, phone); err == nil {
				return nil, apperror.Conflict("Phone already in use by another booking")
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			set["phone"] = phone
		}
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			set["name"] = name
		}
	}
	if input.Message != nil {
		if message := strings.TrimSpace(*input.Message); message != "" {
			set["message"] = message
		}
	}
	if input.Status != nil {
		if status := strings.TrimSpace(*input.Status); status != "" {
			set["status"] = status
		}
	}

	if err := s.BookingRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	updated, err := s.BookingRepo.FindByID(ctx, existing.ID)
	if err != nil {
		return nil, err
	}
	return s.resolveView(ctx, updated)
}

func (s *BookingServiceImpl) DeleteBooking(ctx context.Context, id string) error {
	existing, err := s.findBooking(ctx, id)
	if err != nil {
		return err
	}
	return s.BookingRepo.Delete(ctx, existing.ID)
}

func (s *BookingServiceImpl) findBooking(ctx context.Context, id string) (*Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	booking, err := s.BookingRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Booking not found")
	}
	return booking, err
}

func (s *BookingServiceImpl) resolveService(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperror.Validation("Invalid ID format")
	}
	if _, err := s.ServiceRepo.FindByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, apperror.NotFound("Invalid serviceType — Service not found")
		}
		return primitive.NilObjectID, err
	}
	return oid, nil
}

func (s *BookingServiceImpl) resolveProgram(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperror.Validation("Invalid ID format")
	}
	if _, err := s.ProgramRepo.FindByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, apperror.NotFound("Invalid programType — Program not found")
		}
		return primitive.NilObjectID, err
	}
	return oid, nil
}

// resolveView joins the referenced service and program. A dangling
// reference resolves to nil rather than failing the whole response.
func (s *BookingServiceImpl) resolveView(ctx context.Context, booking *Booking) (*BookingView, error) {
	view := &BookingView{
		ID:        booking.ID,
		Name:      booking.Name,
		Email:     booking.Email,
		Phone:     booking.Phone,
		Message:   booking.Message,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}

	if svc, err := s.ServiceRepo.FindByID(ctx, booking.ServiceType); err == nil {
		view.ServiceType = &ResourceRef{ID: svc.ID, Name: svc.Name, Status: svc.Status}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if prog, err := s.ProgramRepo.FindByID(ctx, booking.ProgramType); err == nil {
		view.ProgramType = &ResourceRef{ID: prog.ID, Name: prog.Name, Status: prog.Status}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return view, nil
}

func buildBookingFilter(filter BookingFilter) (bson.M, error) {
	query := bson.M{}
	if status := strings.TrimSpace(filter.Status); status != "" {
		query["status"] = status
	}
	if st := strings.TrimSpace(filter.ServiceType); st != "" {
		oid, err := primitive.ObjectIDFromHex(st)
		if err != nil {
			return nil, apperror.Validation("Invalid ID format")
		}
		query["serviceType"] = oid
	}
	if pt := strings.TrimSpace(filter.ProgramType); pt != "" {
		oid, err := primitive.ObjectIDFromHex(pt)
		if err != nil {
			return nil, apperror.Validation("Invalid ID format")
		}
		query["programType"] = oid
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		regex := bson.M{"$regex": primitive.Regex{Pattern: search, Options: "i"}}
		query["$or"] = []bson.M{
			{"name": regex},
			{"email": regex},
			{"phone": regex},
			{"message": regex},
		}
	}
	return query, nil
}
