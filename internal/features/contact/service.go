package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-admin/internal/common/apperror"
	"go-admin/internal/features/childissue"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ContactService interface {
	CreateContact(ctx context.Context, input CreateContactInput) (*ContactView, error)
	ListContacts(ctx context.Context, filter ContactFilter) ([]ContactView, int64, error)
	GetContactByID(ctx context.Context, id string) (*ContactView, error)
	UpdateContact(ctx context.Context, id string, input UpdateContactInput) (*ContactView, error)
	DeleteContact(ctx context.Context, id string) error
}

type ContactServiceImpl struct {
	ContactRepo    ContactRepository
	ChildIssueRepo childissue.ChildIssueRepository
}

func NewContactService(contactRepo ContactRepository, childIssueRepo childissue.ChildIssueRepository) ContactService {
	return &ContactServiceImpl{
		ContactRepo:    contactRepo,
		ChildIssueRepo: childIssueRepo,
	}
}

func (s *ContactServiceImpl) CreateContact(ctx context.Context, input CreateContactInput) (*ContactView, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || phone == "" || email == "" || input.ChildIssue == "" || message == "" {
		return nil, apperror.Validation("All required fields (name, phone, email, childIssue, message) must be provided")
	}

	issueID, err := s.resolveChildIssue(ctx, input.ChildIssue)
	if err != nil {
		return nil, err
	}

	if _, err := s.ContactRepo.FindByEmailAndPhone(ctx, email, phone); err == nil {
		return nil, apperror.Conflict("A contact with this email and phone already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	website := WebsiteDeepConnection
	if input.Website != nil {
		website = *input.Website
	}

	contact := &Contact{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Phone:      phone,
		Email:      email,
		ChildIssue: issueID,
		Message:    message,
		Website:    website,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.ContactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return s.resolveView(ctx, contact)
}

func (s *ContactServiceImpl) ListContacts(ctx context.Context, filter ContactFilter) ([]ContactView, int64, error) {
	query, err := buildContactFilter(filter)
	if err != nil {
		return nil, 0, err
	}

	contacts, total, err := s.ContactRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ContactView, 0, len(contacts))
	for i := range contacts {
		view, err := s.resolveView(ctx, &contacts[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}

	return views, total, nil
}

func (s *ContactServiceImpl) GetContactByID(ctx context.Context, id string) (*ContactView, error) {
	contact, err := s.findContact(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveView(ctx, contact)
}

func (s *ContactServiceImpl) UpdateContact(ctx context.Context, id string, input UpdateContactInput) (*ContactView, error) {
	existing, err := s.findContact(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}

	if input.ChildIssue != nil && strings.TrimSpace(*input.ChildIssue) != "" {
		issueID, err := s.resolveChildIssue(ctx, *input.ChildIssue)
		if err != nil {
			return nil, err
		}
		set["childIssue"] = issueID
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			set["name"] = name
		}
	}
	if input.Phone != nil {
		if phone := strings.TrimSpace(*input.Phone); phone != "" {
			set["phone"] = phone
		}
	}
	if input.Email != nil {
		if email := strings.TrimSpace(*input.Email); email != "" {
			set["email"] = email
		}
	}
	if input.Message != nil {
		if message := strings.TrimSpace(*input.Message); message != "" {
			set["message"] = message
		}
	}
	if input.Website != nil {
		set["website"] = *input.Website
	}

	if err := s.ContactRepo.Update(ctx, existing.ID, set); err != nil {
		return nil, err
	}

	updated, err := s.ContactRepo.FindByID(ctx, existing.ID)
	if err != nil {
		return nil, err
	}
	return s.resolveView(ctx, updated)
}

func (s *ContactServiceImpl) DeleteContact(ctx context.Context, id string) error {
	existing, err := s.findContact(ctx, id)
	if err != nil {
		return err
	}
	return s.ContactRepo.Delete(ctx, existing.ID)
}

func (s *ContactServiceImpl) findContact(ctx context.Context, id string) (*Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Validation("Invalid ID format")
	}

	contact, err := s.ContactRepo.FindByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.NotFound("Contact not found")
	}
	return contact, err
}

func (s *ContactServiceImpl) resolveChildIssue(ctx context.Context, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, apperror.Validation("Invalid ID format")
	}
	if _, err := s.ChildIssueRepo.FindByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return primitive.NilObjectID, apperror.NotFound("Invalid childIssue — no matching record found")
		}
		return primitive.NilObjectID, err
	}
	return oid, nil
}

func (s *ContactServiceImpl) resolveView(ctx context.Context, contact *Contact) (*ContactView, error) {
	view := &ContactView{
		ID:        contact.ID,
		Name:      contact.Name,
		Phone:     contact.Phone,
		Email:     contact.Email,
		Message:   contact.Message,
		Website:   contact.Website,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}

	if issue, err := s.ChildIssueRepo.FindByID(ctx, contact.ChildIssue); err == nil {
		view.ChildIssue = &ChildIssueRef{ID: issue.ID, Name: issue.Name, Status: issue.Status}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return view, nil
}

func buildContactFilter(filter ContactFilter) (bson.M, error) {
	query := bson.M{}
	if ci := strings.TrimSpace(filter.ChildIssue); ci != "" {
		oid, err := primitive.ObjectIDFromHex(ci)
		if err != nil {
			return nil, apperror.Validation("Invalid ID format")
		}
		query["childIssue"] = oid
	}
	if filter.Website != nil {
		query["website"] = *filter.Website
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
