package repositories

import (
	"strconv"

	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"
	"inventory-app/utils"

	"gorm.io/gorm"
)

type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db}
}

type TransferRequest struct {
	SourceOwner      string `json:"source_owner" validate:"required"`
	DestinationOwner string `json:"destination_owner" validate:"required"`
	ItemTypeID       string `json:"item_type_id" validate:"required"`
	PackagingType    string `json:"packaging_type" validate:"required,oneof=box unit"`
	Quantity         int    `json:"quantity" validate:"required"`
	Notes            string `json:"notes"`
}

// CreateTransfer validates and applies one transfer line. A request either
// becomes an Accepted transfer row with both stock mutations committed, or
// is rejected with no mutation at all.
//
// The debit is a single conditional UPDATE (qty column >= requested), so two
// transfers racing for the same stock cannot both pass the availability
// check: the row is decremented only when the stock is still there, and a
// zero RowsAffected rolls the whole transfer back.
func (r *TransferRepository) CreateTransfer(req TransferRequest, userID int) (*models.Transfer, error) {
	if req.Quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}
	if req.PackagingType != models.PackagingBox && req.PackagingType != models.PackagingUnit {
		return nil, models.ErrInvalidQuantity
	}
	if req.SourceOwner == req.DestinationOwner {
		return nil, models.ErrSameOwner
	}

	stockRepo := NewStockRepository(r.db)
	if !stockRepo.OwnerExists(req.SourceOwner) || !stockRepo.OwnerExists(req.DestinationOwner) {
		return nil, models.ErrUnknownOwner
	}
	if !stockRepo.ItemTypeExists(req.ItemTypeID) {
		return nil, models.ErrUnknownItemType
	}

	column := "boxes"
	if req.PackagingType == models.PackagingUnit {
		column = "units"
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// Pull legacy-only stock into an entry row first, so the conditional
	// debit always has a row to hit. Rolled back with everything else on
	// rejection.
	sourceBefore, err := materializeEntry(tx, req.SourceOwner, req.ItemTypeID, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	res := tx.Model(&models.InventoryEntry{}).
		Where("owner_code = ? AND item_type_id = ? AND "+column+" >= ?",
			req.SourceOwner, req.ItemTypeID, req.Quantity).
		Update(column, gorm.Expr(column+" - ?", req.Quantity))
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, models.ErrInsufficientStock
	}

	destBefore, err := materializeEntry(tx, req.DestinationOwner, req.ItemTypeID, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.InventoryEntry{}).
		Where("owner_code = ? AND item_type_id = ?", req.DestinationOwner, req.ItemTypeID).
		Update(column, gorm.Expr(column+" + ?", req.Quantity)).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Keep the legacy columns in step for both sides.
	for _, ownerCode := range []string{req.SourceOwner, req.DestinationOwner} {
		var entry models.InventoryEntry
		if err := tx.Where("owner_code = ? AND item_type_id = ?", ownerCode, req.ItemTypeID).
			First(&entry).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := mirrorLegacy(tx, ownerCode, req.ItemTypeID, entry.Boxes, entry.Units); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	transfer := models.Transfer{
		ID:               types.SnowflakeID(idgen.GenerateID()),
		SourceOwner:      req.SourceOwner,
		DestinationOwner: req.DestinationOwner,
		ItemTypeID:       req.ItemTypeID,
		PackagingType:    req.PackagingType,
		Quantity:         req.Quantity,
		Notes:            req.Notes,
		CreatedBy:        userID,
	}
	if err := tx.Create(&transfer).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	reference := strconv.FormatInt(int64(transfer.ID), 10)
	debit := models.TransactionHistory{
		OwnerCode:  req.SourceOwner,
		ItemTypeID: req.ItemTypeID,
		Action:     "transfer_out",
		Reference:  reference,
		CreatedBy:  userID,
	}
	credit := models.TransactionHistory{
		OwnerCode:  req.DestinationOwner,
		ItemTypeID: req.ItemTypeID,
		Action:     "transfer_in",
		Reference:  reference,
		CreatedBy:  userID,
	}
	if req.PackagingType == models.PackagingBox {
		debit.BoxesBefore, debit.BoxesAfter = sourceBefore.Boxes, sourceBefore.Boxes-req.Quantity
		debit.UnitsBefore, debit.UnitsAfter = sourceBefore.Units, sourceBefore.Units
		credit.BoxesBefore, credit.BoxesAfter = destBefore.Boxes, destBefore.Boxes+req.Quantity
		credit.UnitsBefore, credit.UnitsAfter = destBefore.Units, destBefore.Units
	} else {
		debit.UnitsBefore, debit.UnitsAfter = sourceBefore.Units, sourceBefore.Units-req.Quantity
		debit.BoxesBefore, debit.BoxesAfter = sourceBefore.Boxes, sourceBefore.Boxes
		credit.UnitsBefore, credit.UnitsAfter = destBefore.Units, destBefore.Units+req.Quantity
		credit.BoxesBefore, credit.BoxesAfter = destBefore.Boxes, destBefore.Boxes
	}
	utils.InsertHistory(tx, debit)
	utils.InsertHistory(tx, credit)

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ListTransfers returns transfer history, newest first, optionally filtered
// by an owner appearing on either side.
func (r *TransferRepository) ListTransfers(ownerCode string, limit int) ([]models.Transfer, error) {
	query := r.db.Order("created_at desc")
	if ownerCode != "" {
		query = query.Where("source_owner = ? OR destination_owner = ?", ownerCode, ownerCode)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var transfers []models.Transfer
	if err := query.Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}
