package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

func TestValidateCNPJ(t *testing.T) {
	assert.NoError(t, entity.ValidateCNPJ("12.345.678/0001-90"))
	assert.Error(t, entity.ValidateCNPJ("12345678000190"), "sem pontuação não passa")
	assert.Error(t, entity.ValidateCNPJ("12.345.678/0001-9"))
	assert.Error(t, entity.ValidateCNPJ(""))
}

func TestValidateCPF(t *testing.T) {
	assert.NoError(t, entity.ValidateCPF("123.456.789-09"))
	assert.Error(t, entity.ValidateCPF("12345678909"))
	assert.Error(t, entity.ValidateCPF("123.456.789-0"))
}

func TestValidateCEP(t *testing.T) {
	assert.NoError(t, entity.ValidateCEP("01310-100"))
	assert.Error(t, entity.ValidateCEP("01310100"))
	assert.Error(t, entity.ValidateCEP("1310-100"))
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, entity.ValidatePhoneNumber("+55 (11) 91234-5678"))
	assert.NoError(t, entity.ValidatePhoneNumber("+55 (11) 1234-5678"))
	assert.Error(t, entity.ValidatePhoneNumber("11912345678"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, entity.ValidateEmail("maria@estoque.com.br"))
	assert.Error(t, entity.ValidateEmail("maria@estoque"))
	assert.Error(t, entity.ValidateEmail("sem-arroba.com"))
}

func TestProductValidate(t *testing.T) {
	valid := entity.Product{
		Name:       "Arroz 5kg",
		SupplierID: "sup-1",
		CategoryID: "cat-1",
		Price:      decimal.NewFromFloat(24.90),
		Quantity:   10,
	}
	assert.NoError(t, valid.Validate())

	shortName := valid
	shortName.Name = "Ar"
	assert.ErrorIs(t, shortName.Validate(), domain.ErrInvalidInput)

	negativePrice := valid
	negativePrice.Price = decimal.NewFromFloat(-1)
	assert.ErrorIs(t, negativePrice.Validate(), domain.ErrInvalidInput)

	negativeQty := valid
	negativeQty.Quantity = -1
	assert.ErrorIs(t, negativeQty.Validate(), domain.ErrInvalidInput)
}

func TestSupplierValidate(t *testing.T) {
	valid := entity.Supplier{
		CNPJ:       "12.345.678/0001-90",
		SocialName: "Distribuidora Central LTDA",
		CEP:        "01310-100",
		CategoryID: "cat-1",
	}
	assert.NoError(t, valid.Validate())

	badCNPJ := valid
	badCNPJ.CNPJ = "12345678000190"
	assert.ErrorIs(t, badCNPJ.Validate(), domain.ErrInvalidInput)

	noCategory := valid
	noCategory.CategoryID = ""
	assert.ErrorIs(t, noCategory.Validate(), domain.ErrInvalidInput)
}

func TestPurchaseItemValidate(t *testing.T) {
	valid := entity.PurchaseItem{
		ProductID: "prod-1",
		Quantity:  5,
		UnitPrice: decimal.NewFromFloat(10.00),
	}
	assert.NoError(t, valid.Validate())

	zeroQty := valid
	zeroQty.Quantity = 0
	assert.ErrorIs(t, zeroQty.Validate(), domain.ErrInvalidInput)

	negativePrice := valid
	negativePrice.UnitPrice = decimal.NewFromFloat(-0.01)
	assert.ErrorIs(t, negativePrice.Validate(), domain.ErrInvalidInput)
}

func TestPurchaseOrderTotalAmount(t *testing.T) {
	order := entity.PurchaseOrder{
		Items: []entity.PurchaseItem{
			{Quantity: 20, UnitPrice: decimal.NewFromFloat(22.00)},
			{Quantity: 10, UnitPrice: decimal.NewFromFloat(7.80)},
		},
	}
	assert.True(t, order.TotalAmount().Equal(decimal.NewFromFloat(518.00)))

	empty := entity.PurchaseOrder{}
	assert.True(t, empty.TotalAmount().Equal(decimal.Zero))
}

func TestUserValidate(t *testing.T) {
	valid := entity.User{
		Name:        "Maria Silva",
		CPF:         "123.456.789-09",
		Birthday:    time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		CEP:         "01310-100",
		PhoneNumber: "+55 (11) 91234-5678",
		Email:       "maria@estoque.com.br",
		Role:        entity.RoleAdmin,
	}
	assert.NoError(t, valid.Validate())

	badRole := valid
	badRole.Role = "gerente"
	assert.ErrorIs(t, badRole.Validate(), domain.ErrInvalidInput)

	noBirthday := valid
	noBirthday.Birthday = time.Time{}
	assert.ErrorIs(t, noBirthday.Validate(), domain.ErrInvalidInput)
}
