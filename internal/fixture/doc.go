// Package fixture provides the YAML description of PHP source files that
// the resolver runs against, in place of a PHP parser.
//
// # Schema Overview
//
//	version: "1"
//	files:
//	  - path: src/Product.php
//	    namespace: hoge\fuga\product     # or [hoge, fuga, product]
//	    uses:
//	      - hoge\fuga\product\bar\Boo
//	      - Vendor\Money\Price as Money
//	    classes:
//	      - name: Product
//	        properties:
//	          - name: name
//	            type: "?string"
//	          - name: price
//	            type: int
//	            doc: "/** @var Money */"
//	        methods:
//	          - name: relate
//	            doc: |
//	              /**
//	               * @param Boo|null $boo
//	               */
//	            params:
//	              - name: boo
//	                type: object
//	            return: void
//
// Native types use PHP syntax and are parsed with phpast.Parse. Doc
// comments are passed through untouched.
package fixture
