package repositories

import (
	"sync"
	"testing"

	"inventory-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransferBoxes(t *testing.T) {
	db := newTestDB(t)
	stockRepo := NewStockRepository(db)
	transferRepo := NewTransferRepository(db)

	require.NoError(t, stockRepo.SetEffectiveStock("W1", "n950", 5, 12, 1))

	transfer, err := transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "T1",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         3,
	}, 1)
	require.NoError(t, err)
	require.NotNil(t, transfer)
	assert.NotZero(t, transfer.ID)

	source, err := stockRepo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 2, source.Boxes)
	assert.Equal(t, 12, source.Units) // other dimension untouched

	dest, err := stockRepo.GetEffectiveStock("T1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 3, dest.Boxes)
	assert.Equal(t, 0, dest.Units)
}

func TestCreateTransferConservation(t *testing.T) {
	db := newTestDB(t)
	stockRepo := NewStockRepository(db)
	transferRepo := NewTransferRepository(db)

	require.NoError(t, stockRepo.SetEffectiveStock("W1", "sim_card", 0, 40, 1))

	_, err := transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "W2",
		ItemTypeID:       "sim_card",
		PackagingType:    models.PackagingUnit,
		Quantity:         15,
	}, 1)
	require.NoError(t, err)

	source, err := stockRepo.GetEffectiveStock("W1", "sim_card")
	require.NoError(t, err)
	dest, err := stockRepo.GetEffectiveStock("W2", "sim_card")
	require.NoError(t, err)

	assert.Equal(t, 25, source.Units)
	assert.Equal(t, 15, dest.Units)
	assert.Equal(t, 40, source.Units+dest.Units)
}

func TestCreateTransferInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	stockRepo := NewStockRepository(db)
	transferRepo := NewTransferRepository(db)

	require.NoError(t, stockRepo.SetEffectiveStock("W1", "n950", 2, 0, 1))

	_, err := transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "T1",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         3,
	}, 1)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// Rejection leaves both sides untouched.
	source, err := stockRepo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 2, source.Boxes)

	dest, err := stockRepo.GetEffectiveStock("T1", "n950")
	require.NoError(t, err)
	assert.Zero(t, dest.Boxes)

	var count int64
	db.Model(&models.Transfer{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateTransferInvalidInput(t *testing.T) {
	db := newTestDB(t)
	transferRepo := NewTransferRepository(db)

	_, err := transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "T1",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         0,
	}, 1)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	_, err = transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "T1",
		ItemTypeID:       "n950",
		PackagingType:    "pallet",
		Quantity:         1,
	}, 1)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	_, err = transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "W1",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         1,
	}, 1)
	assert.ErrorIs(t, err, models.ErrSameOwner)

	_, err = transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W9",
		DestinationOwner: "T1",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         1,
	}, 1)
	assert.ErrorIs(t, err, models.ErrUnknownOwner)

	_, err = transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "T1",
		ItemTypeID:       "hologram",
		PackagingType:    models.PackagingBox,
		Quantity:         1,
	}, 1)
	assert.ErrorIs(t, err, models.ErrUnknownItemType)
}

func TestCreateTransferFromLegacyOnlyStock(t *testing.T) {
	db := newTestDB(t)
	stockRepo := NewStockRepository(db)
	transferRepo := NewTransferRepository(db)

	// W2 has never been migrated: stock lives only in the legacy columns.
	require.NoError(t, db.Create(&models.LegacyStock{
		OwnerCode: "W2",
		N950Boxes: 4,
	}).Error)

	_, err := transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W2",
		DestinationOwner: "T1",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         3,
	}, 1)
	require.NoError(t, err)

	source, err := stockRepo.GetEffectiveStock("W2", "n950")
	require.NoError(t, err)
	assert.Equal(t, 1, source.Boxes)

	dest, err := stockRepo.GetEffectiveStock("T1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 3, dest.Boxes)

	// The legacy columns were mirrored, so unmigrated reports agree.
	var record models.LegacyStock
	require.NoError(t, db.Where("owner_code = ?", "W2").First(&record).Error)
	assert.Equal(t, 1, record.N950Boxes)
}

func TestCreateTransferSequentialOverdraw(t *testing.T) {
	db := newTestDB(t)
	stockRepo := NewStockRepository(db)
	transferRepo := NewTransferRepository(db)

	require.NoError(t, stockRepo.SetEffectiveStock("W1", "n950", 5, 0, 1))

	_, err := transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "T1",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         4,
	}, 1)
	require.NoError(t, err)

	_, err = transferRepo.CreateTransfer(TransferRequest{
		SourceOwner:      "W1",
		DestinationOwner: "W2",
		ItemTypeID:       "n950",
		PackagingType:    models.PackagingBox,
		Quantity:         4,
	}, 1)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	source, err := stockRepo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 1, source.Boxes)
}

func TestCreateTransferConcurrentOverdraw(t *testing.T) {
	db := newTestDB(t)
	stockRepo := NewStockRepository(db)
	transferRepo := NewTransferRepository(db)

	require.NoError(t, stockRepo.SetEffectiveStock("W1", "n950", 5, 0, 1))

	// Two transfers race for the same stock; together they exceed it.
	// The conditional debit admits exactly one.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	destinations := []string{"T1", "W2"}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = transferRepo.CreateTransfer(TransferRequest{
				SourceOwner:      "W1",
				DestinationOwner: destinations[i],
				ItemTypeID:       "n950",
				PackagingType:    models.PackagingBox,
				Quantity:         4,
			}, 1)
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, models.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, accepted)

	source, err := stockRepo.GetEffectiveStock("W1", "n950")
	require.NoError(t, err)
	assert.Equal(t, 1, source.Boxes)
}

func TestListTransfers(t *testing.T) {
	db := newTestDB(t)
	stockRepo := NewStockRepository(db)
	transferRepo := NewTransferRepository(db)

	require.NoError(t, stockRepo.SetEffectiveStock("W1", "n950", 10, 0, 1))
	for i := 0; i < 3; i++ {
		_, err := transferRepo.CreateTransfer(TransferRequest{
			SourceOwner:      "W1",
			DestinationOwner: "T1",
			ItemTypeID:       "n950",
			PackagingType:    models.PackagingBox,
			Quantity:         1,
		}, 1)
		require.NoError(t, err)
	}

	all, err := transferRepo.ListTransfers("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byOwner, err := transferRepo.ListTransfers("T1", 0)
	require.NoError(t, err)
	assert.Len(t, byOwner, 3)

	none, err := transferRepo.ListTransfers("W2", 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	limited, err := transferRepo.ListTransfers("", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
