package supplier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"envanter-cli/internal/database"
	"envanter-cli/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("tedarikçi bulunamadı")
	ErrInvalidInput = errors.New("geçersiz tedarikçi bilgisi")
	ErrInvalidEmail = errors.New("geçersiz email formatı")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UpdateInput: kısmi güncelleme için nil alanlar dokunulmadan bırakılır.
type UpdateInput struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
}

// Manager tedarikçi iletişim kayıtlarını yönetir. Tedarikçilerin ürün veya
// siparişlerle zorunlu bir ilişkisi yoktur.
type Manager struct {
	store *database.Store
	log   *zap.Logger
}

func NewManager(store *database.Store, log *zap.Logger) *Manager {
	return &Manager{store: store, log: log}
}

func validateEmail(email string) error {
	if email != "" && !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}
	return nil
}

func (m *Manager) Add(name, contactPerson, email, phone string) (*models.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: isim zorunlu", ErrInvalidInput)
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	s := models.Supplier{
		Name:          name,
		ContactPerson: contactPerson,
		Email:         email,
		Phone:         phone,
	}
	if err := m.store.DB.Create(&s).Error; err != nil {
		m.log.Error("tedarikçi oluşturulamadı", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("tedarikçi oluşturulamadı: %w", err)
	}

	m.log.Info("tedarikçi eklendi", zap.Uint("id", s.ID), zap.String("name", name))
	return &s, nil
}

func (m *Manager) Get(id uint) (*models.Supplier, error) {
	var s models.Supplier
	if err := m.store.DB.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("tedarikçi sorgulanamadı: %w", err)
	}
	return &s, nil
}

func (m *Manager) List() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := m.store.DB.Order("name").Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("tedarikçiler listelenemedi: %w", err)
	}
	return suppliers, nil
}

// Update sadece verilen alanları değiştirir. Hiçbir alan verilmemişse kayıt
// olduğu gibi döner.
func (m *Manager) Update(id uint, in UpdateInput) (*models.Supplier, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: isim boş olamaz", ErrInvalidInput)
		}
		updates["name"] = name
	}
	if in.ContactPerson != nil {
		updates["contact_person"] = *in.ContactPerson
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}

	if len(updates) == 0 {
		return s, nil
	}

	if err := m.store.DB.Model(s).Updates(updates).Error; err != nil {
		m.log.Error("tedarikçi güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("tedarikçi güncellenemedi: %w", err)
	}

	return m.Get(id)
}

func (m *Manager) Delete(id uint) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}

	if err := m.store.DB.Delete(s).Error; err != nil {
		m.log.Error("tedarikçi silinemedi", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("tedarikçi silinemedi: %w", err)
	}

	m.log.Info("tedarikçi silindi", zap.Uint("id", id), zap.String("name", s.Name))
	return nil
}
