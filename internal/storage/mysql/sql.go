package mysql

// -----------------------------------------------------------------------------
// DDL — run at startup, safe against an already-initialized schema.
// -----------------------------------------------------------------------------

const createBusinessesSQL = `
CREATE TABLE IF NOT EXISTS businesses (
  business_id     INT AUTO_INCREMENT PRIMARY KEY,
  owner_id        INT NOT NULL,
  name            VARCHAR(50) NOT NULL,
  street_address  VARCHAR(100) NOT NULL,
  city            VARCHAR(50) NOT NULL,
  state           CHAR(2) NOT NULL,
  zip_code        CHAR(5) NOT NULL
) ENGINE=InnoDB
`

const createReviewsSQL = `
CREATE TABLE IF NOT EXISTS reviews (
  review_id     INT AUTO_INCREMENT PRIMARY KEY,
  user_id       INT NOT NULL,
  business_id   INT NOT NULL,
  stars         INT NOT NULL,
  review_text   VARCHAR(1000) NOT NULL DEFAULT '',
  CONSTRAINT fk_reviews_business
      FOREIGN KEY (business_id)
      REFERENCES businesses(business_id)
      ON DELETE CASCADE,
  CONSTRAINT uq_user_business UNIQUE (user_id, business_id),
  CONSTRAINT ck_stars CHECK (stars BETWEEN 0 AND 5)
) ENGINE=InnoDB
`

// -----------------------------------------------------------------------------
// Businesses
// -----------------------------------------------------------------------------

const insertBusinessSQL = `
INSERT INTO businesses (owner_id, name, street_address, city, state, zip_code)
VALUES (?, ?, ?, ?, ?, ?)
`

const selectBusinessSQL = `
SELECT business_id, owner_id, name, street_address, city, state, zip_code
FROM businesses
WHERE business_id = ?
`

const listBusinessesSQL = `
SELECT business_id, owner_id, name, street_address, city, state, zip_code
FROM businesses
ORDER BY business_id
LIMIT ? OFFSET ?
`

const listBusinessesByOwnerSQL = `
SELECT business_id, owner_id, name, street_address, city, state, zip_code
FROM businesses
WHERE owner_id = ?
ORDER BY business_id
`

const updateBusinessSQL = `
UPDATE businesses
SET owner_id = ?, name = ?, street_address = ?, city = ?, state = ?, zip_code = ?
WHERE business_id = ?
`

const deleteBusinessSQL = `DELETE FROM businesses WHERE business_id = ?`

const businessExistsSQL = `SELECT business_id FROM businesses WHERE business_id = ?`

// -----------------------------------------------------------------------------
// Reviews
// -----------------------------------------------------------------------------

const insertReviewSQL = `
INSERT INTO reviews (user_id, business_id, stars, review_text)
VALUES (?, ?, ?, ?)
`

const selectReviewSQL = `
SELECT review_id, user_id, business_id, stars, review_text
FROM reviews
WHERE review_id = ?
`

const listReviewsByUserSQL = `
SELECT review_id, user_id, business_id, stars, review_text
FROM reviews
WHERE user_id = ?
ORDER BY review_id
`

const updateReviewSQL = `UPDATE reviews SET stars = ?, review_text = ? WHERE review_id = ?`

const updateReviewStarsSQL = `UPDATE reviews SET stars = ? WHERE review_id = ?`

const deleteReviewSQL = `DELETE FROM reviews WHERE review_id = ?`

const reviewExistsSQL = `SELECT review_id FROM reviews WHERE review_id = ?`
